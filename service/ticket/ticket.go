// Package ticket turns a fetched conversation into Linear-ready issue text.
package ticket

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/linearconnect/platform/models"
	"github.com/linearconnect/platform/service/ai"
	"github.com/linearconnect/platform/service/intercom"
)

const (
	// TitleLimit is Linear's issue title length ceiling.
	TitleLimit = 80

	modelBasic    = "gpt-3.5-turbo"
	modelAdvanced = "gpt-4"

	systemBasic    = "Create a clear, concise support ticket from this customer conversation."
	systemAdvanced = "Create a comprehensive, engineer-ready Linear ticket with detailed analysis, business impact, and specific next steps. Include acceptance criteria and technical context."
)

// Enhancer produces enhanced ticket bodies from conversations.
type Enhancer struct {
	AI ai.Service
}

// Enhance builds an issue description from the conversation. The completion
// call gets one attempt; on any failure the templated fallback body is
// returned instead, so enhancement can never abort a delivery.
func (e Enhancer) Enhance(ctx context.Context, conversation intercom.Conversation, tier models.Tier) string {
	customer := conversation.Customer()
	name := defaultStr(customer.Name, "Unknown")
	email := defaultStr(customer.Email, "No email")
	plan := defaultStr(customer.CustomAttributes.Plan, "Unknown")
	content := conversation.ConversationMessage.Body

	req := ai.Request{
		Model:     modelBasic,
		System:    systemBasic,
		MaxTokens: 300,
	}
	if tier != models.TierFree {
		req.Model = modelAdvanced
		req.System = systemAdvanced
		req.MaxTokens = 800
	}
	req.Prompt = fmt.Sprintf(`CUSTOMER INFO:
Name: %s
Email: %s
Plan: %s

MESSAGE: %s

Please create a properly formatted ticket with title, description, and action items.`, name, email, plan, content)

	body, err := e.AI.Complete(ctx, req)
	if err != nil {
		log.WithFields(log.Fields{"tier": tier, "error": err.Error()}).
			Warn("completion failed, using fallback ticket body")
		return fallbackBody(name, email, content)
	}
	return body
}

func fallbackBody(name, email, content string) string {
	return fmt.Sprintf(`# Customer Issue

**Customer:** %s
**Email:** %s

**Issue Description:**
%s

**Next Steps:**
- [ ] Investigate the issue
- [ ] Contact customer for more details
- [ ] Implement solution
- [ ] Follow up with customer`, name, email, content)
}

// Title formats the issue title, truncated to Linear's 80 character limit.
func Title(tier models.Tier, customerName, subject string) string {
	title := fmt.Sprintf("[%s] %s - %s",
		tier,
		defaultStr(customerName, "Customer"),
		defaultStr(subject, "Support Request"))
	if len(title) > TitleLimit {
		return title[:TitleLimit]
	}
	return title
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
