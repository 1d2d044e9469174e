package linear

//go:generate mockgen -source=linear.go -package=linear -destination=linear_mock.go

import (
	"context"
	"errors"

	"github.com/machinebox/graphql"
)

// DefaultPriority is the priority assigned to every relayed issue.
const DefaultPriority = 3

// User is the token owner, looked up during setup to prove the token works.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IssueInput describes the issue to create.
type IssueInput struct {
	TeamID      string
	Title       string
	Description string
	Priority    int
}

// Issue is a created tracker issue.
type Issue struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	URL        string `json:"url"`
}

// Service is a Linear API service. Tokens are per-account, so every call
// takes one.
type Service interface {
	// Viewer looks up the token's user. An error means the token is bad.
	Viewer(ctx context.Context, token string) (User, error)
	// CreateIssue submits an issue-create mutation. GraphQL errors from the
	// tracker are returned verbatim.
	CreateIssue(ctx context.Context, token string, input IssueInput) (Issue, error)
}

// ServiceConfig holds configuration for service.
type ServiceConfig struct {
	Endpoint string `env:"RELAY_LINEAR_ENDPOINT" envDefault:"https://api.linear.app/graphql"`
}

// New creates a new service with conf.
func New(conf ServiceConfig) Service {
	return &service{
		conf:   conf,
		client: graphql.NewClient(conf.Endpoint),
	}
}

type service struct {
	conf   ServiceConfig
	client *graphql.Client
}

const viewerQuery = `
	query {
		viewer { id name email }
	}
`

func (s *service) Viewer(ctx context.Context, token string) (User, error) {
	req := graphql.NewRequest(viewerQuery)
	req.Header.Set("Authorization", "Bearer "+token)

	var resp struct {
		Viewer User `json:"viewer"`
	}
	if err := s.client.Run(ctx, req, &resp); err != nil {
		return User{}, err
	}
	return resp.Viewer, nil
}

const issueCreateMutation = `
	mutation CreateIssue($input: IssueCreateInput!) {
		issueCreate(input: $input) {
			success
			issue { id identifier title url }
		}
	}
`

func (s *service) CreateIssue(ctx context.Context, token string, input IssueInput) (Issue, error) {
	req := graphql.NewRequest(issueCreateMutation)
	req.Var("input", map[string]interface{}{
		"teamId":      input.TeamID,
		"title":       input.Title,
		"description": input.Description,
		"priority":    input.Priority,
	})
	req.Header.Set("Authorization", "Bearer "+token)

	var resp struct {
		IssueCreate struct {
			Success bool  `json:"success"`
			Issue   Issue `json:"issue"`
		} `json:"issueCreate"`
	}
	if err := s.client.Run(ctx, req, &resp); err != nil {
		return Issue{}, err
	}
	if !resp.IssueCreate.Success {
		return Issue{}, errors.New("issue create was not successful")
	}
	return resp.IssueCreate.Issue, nil
}
