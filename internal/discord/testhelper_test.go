package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// capturedEdit is the body of an interaction response edit
type capturedEdit struct {
	Content *string                   `json:"content"`
	Embeds  []*discordgo.MessageEmbed `json:"embeds"`
}

// TestContext wires a fake API backend and a Discord session whose HTTP
// calls are captured instead of sent.
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session

	mu        sync.Mutex
	Responses []discordgo.InteractionResponse
	Edits     []capturedEdit

	// RegisteredCommands is served for GET .../commands; Overwrites
	// collects PUT bodies sent to the same endpoint.
	RegisteredCommands []*discordgo.ApplicationCommand
	Overwrites         [][]*discordgo.ApplicationCommand
}

// SetupTestContext creates a TestContext that is torn down with t.
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = 0

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: tc.captureDiscord}}
	return tc
}

func (tc *TestContext) captureDiscord(req *http.Request) (*http.Response, error) {
	if strings.HasSuffix(req.URL.Path, "/commands") {
		return tc.commandsEndpoint(req)
	}

	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		tc.mu.Lock()
		switch {
		case strings.HasSuffix(req.URL.Path, "/callback"):
			var resp discordgo.InteractionResponse
			if json.Unmarshal(body, &resp) == nil {
				tc.Responses = append(tc.Responses, resp)
			}
		case req.Method == http.MethodPatch:
			var edit capturedEdit
			if json.Unmarshal(body, &edit) == nil {
				tc.Edits = append(tc.Edits, edit)
			}
		}
		tc.mu.Unlock()
	}

	return jsonResponse("{}"), nil
}

func (tc *TestContext) commandsEndpoint(req *http.Request) (*http.Response, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	cmds := tc.RegisteredCommands
	if req.Method == http.MethodPut && req.Body != nil {
		cmds = nil
		if err := json.NewDecoder(req.Body).Decode(&cmds); err != nil {
			return nil, err
		}
		tc.Overwrites = append(tc.Overwrites, cmds)
	}

	if cmds == nil {
		cmds = []*discordgo.ApplicationCommand{}
	}
	body, err := json.Marshal(cmds)
	if err != nil {
		return nil, err
	}
	return jsonResponse(string(body)), nil
}

func jsonResponse(body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     header,
	}
}

// LastEdit returns the most recent response edit.
func (tc *TestContext) LastEdit(t *testing.T) capturedEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if len(tc.Edits) == 0 {
		t.Fatal("expected an interaction response edit")
	}
	return tc.Edits[len(tc.Edits)-1]
}

// newInteraction builds a slash command interaction.
func newInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{User: &discordgo.User{ID: "user-id", Username: "tester"}},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	// Discord delivers integers as JSON numbers
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func boolOption(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionBoolean, Value: value}
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
