package courier_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/courier"
	"github.com/dmitrymomot/courier/pkg/compose"
	"github.com/dmitrymomot/courier/pkg/dispatch"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg *compose.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type welcomeDefinition struct{}

func (welcomeDefinition) Meta() compose.Meta {
	return compose.Meta{
		Name:             "Welcome",
		ExpectsRecipient: true,
		Macros: map[string]string{
			"plan":    "The recipient's plan name.",
			"support": "The support contact address.",
		},
	}
}

func (welcomeDefinition) Subject() string { return "Welcome to #site_name#" }

func (welcomeDefinition) HTML() string {
	return "<p>Hi #to_first_name#, your #plan# plan is ready. Questions? Write to #support#.</p>"
}

func (welcomeDefinition) Macro(name string) string {
	switch name {
	case "plan":
		return "Free"
	case "support":
		return "support@example.com"
	}
	return ""
}

func testConfig() courier.Config {
	return courier.Config{
		Compose: compose.Config{
			SiteName:    "Acme",
			SiteLink:    "https://acme.example.com",
			FromAddress: "noreply@acme.example.com",
		},
	}
}

func TestClientSend(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	client := courier.New(sender, testConfig())
	client.MustRegister("welcome", welcomeDefinition{})

	var sent *compose.Message
	sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(*compose.Message)
	}).Return(nil).Once()

	msg, err := client.Send(context.Background(), courier.Params{
		Definition: "welcome",
		Recipient: &courier.Recipient{
			Email:     "jamie@example.com",
			Name:      "Jamie Doe",
			FirstName: "Jamie",
		},
		Macros: map[string]string{"plan": "Pro"},
	})
	require.NoError(t, err)
	require.NotNil(t, msg)
	sender.AssertExpectations(t)
	require.Same(t, msg, sent)

	require.Equal(t, "noreply@acme.example.com", msg.Sender)
	require.Equal(t, `"Jamie Doe" <jamie@example.com>`, msg.Recipient)
	require.Equal(t, "Welcome to Acme", msg.Subject)

	require.NotContains(t, msg.Body, "#content#")
	require.Contains(t, msg.Body, "Hi Jamie, your Pro plan is ready.")
	require.Contains(t, msg.Body, "support@example.com")
	require.Contains(t, msg.Body, `<a href="https://acme.example.com">Acme</a>`)
	require.NotEmpty(t, msg.Text)
}

func TestClientSendUnknownDefinition(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	client := courier.New(sender, testConfig())

	msg, err := client.Send(context.Background(), courier.Params{Definition: "missing"})
	require.ErrorIs(t, err, compose.ErrUnknownDefinition)
	require.Nil(t, msg)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestClientSendTestingModeSuppressed(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Dispatch = dispatch.Config{TestingMode: true}

	sender := &mockSender{}
	client := courier.New(sender, cfg)
	client.MustRegister("welcome", welcomeDefinition{})

	msg, err := client.Send(context.Background(), courier.Params{
		Definition: "welcome",
		Recipient:  courier.Address("jamie@example.com"),
	})
	require.NoError(t, err)
	require.NotNil(t, msg)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestClientComposeThenDispatch(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	client := courier.New(sender, testConfig())
	client.MustRegister("welcome", welcomeDefinition{})

	msg, err := client.Compose(context.Background(), courier.Params{
		Definition: "welcome",
		Recipient:  courier.Address("jamie@example.com"),
	})
	require.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)

	sender.On("Send", mock.Anything, msg).Return(nil).Once()
	require.NoError(t, client.Dispatch(context.Background(), msg))
	sender.AssertExpectations(t)

	require.True(t, strings.HasPrefix(msg.Headers["Content-Type"], "multipart/mixed;boundary="))
	require.Equal(t, "noreply@acme.example.com", msg.Headers["From"])
}

func TestClientDefinitions(t *testing.T) {
	t.Parallel()

	client := courier.New(&mockSender{}, testConfig())
	client.MustRegister("welcome", welcomeDefinition{})
	client.MustRegister("digest", welcomeDefinition{})

	require.ElementsMatch(t, []string{"welcome", "digest"}, client.Definitions())
}
