package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deliveryhub/internal/adapters/out/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WhatsAppProvider_PostsMessage(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider := notify.NewWhatsAppProvider(server.URL, "secret-token", time.Second)

	err := provider.Send(context.Background(), "+15550100", "Your delivery has been completed!")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "+15550100", gotBody["to"])
	assert.Equal(t, "Your delivery has been completed!", gotBody["body"])
}

func Test_WhatsAppProvider_NonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := notify.NewWhatsAppProvider(server.URL, "secret-token", time.Second)

	err := provider.Send(context.Background(), "+15550100", "hello")

	assert.ErrorContains(t, err, "502")
}

func Test_WhatsAppProvider_RespectsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	provider := notify.NewWhatsAppProvider(server.URL, "secret-token", time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := provider.Send(ctx, "+15550100", "hello")

	assert.Error(t, err)
}

func Test_ConsoleProvider_NeverFails(t *testing.T) {
	provider := notify.NewConsoleProvider(discardLogger())

	err := provider.Send(context.Background(), "+15550100", "hello")

	assert.NoError(t, err)
}
