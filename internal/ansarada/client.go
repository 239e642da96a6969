package ansarada

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"auralis/internal/domain"

	graphql "github.com/hasura/go-graphql-client"
)

const (
	// DefaultBaseURL is the default Ansarada GraphQL endpoint
	DefaultBaseURL = "https://api.dev1.ansarada.com/v1/graphql"
	// DefaultTimeout is the default HTTP timeout for Ansarada requests
	DefaultTimeout = 30 * time.Second

	serviceName = "ansarada"
)

// DataRoom is a data room as Ansarada reports it
type DataRoom struct {
	ID          string
	DisplayName string
}

// Client queries the Ansarada GraphQL API on behalf of a bearer token.
// The token is per call; nothing is cached between calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	graphql    *graphql.Client
}

// NewClient creates an Ansarada client with the default endpoint and timeout.
func NewClient() *Client {
	return NewClientWithConfig(DefaultBaseURL, DefaultTimeout)
}

// NewClientWithConfig creates an Ansarada client with custom configuration.
func NewClientWithConfig(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		graphql:    graphql.NewClient(baseURL, httpClient),
	}
}

// dataRoomsQuery renders as
// query($first:Int!){me{dataRoomUsers(first: $first){nodes{dataRoom{id,displayName}}}}}
type dataRoomsQuery struct {
	Me struct {
		DataRoomUsers struct {
			Nodes []struct {
				DataRoom struct {
					ID          string `graphql:"id"`
					DisplayName string `graphql:"displayName"`
				} `graphql:"dataRoom"`
			} `graphql:"nodes"`
		} `graphql:"dataRoomUsers(first: $first)"`
	} `graphql:"me"`
}

// ListDataRooms returns up to first data rooms the token's user belongs to.
// Any transport, HTTP or GraphQL failure is reported as a *domain.UpstreamError.
func (c *Client) ListDataRooms(ctx context.Context, accessToken string, first int) ([]DataRoom, error) {
	client := c.graphql.WithRequestModifier(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	})

	var q dataRoomsQuery
	variables := map[string]interface{}{
		"first": graphql.Int(first),
	}

	if err := client.Query(ctx, &q, variables); err != nil {
		return nil, &domain.UpstreamError{
			Service: serviceName,
			Message: fmt.Sprintf("list data rooms from %s", c.baseURL),
			Err:     err,
		}
	}

	rooms := make([]DataRoom, 0, len(q.Me.DataRoomUsers.Nodes))
	for _, node := range q.Me.DataRoomUsers.Nodes {
		rooms = append(rooms, DataRoom{
			ID:          node.DataRoom.ID,
			DisplayName: node.DataRoom.DisplayName,
		})
	}

	return rooms, nil
}
