package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemandSend(t *testing.T) {
	var received url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		received = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewDemandService(server.URL)
	require.True(t, svc.IsEnabled())

	err := svc.Send(context.Background(), &DemandInput{
		Name:    "João",
		Phone:   "94999990000",
		Subject: "Cesta básica",
		Message: "Preciso de ajuda",
	})
	require.NoError(t, err)

	assert.Equal(t, "João", received.Get("nome"))
	assert.Equal(t, "94999990000", received.Get("telefone"))
	assert.Equal(t, "Cesta básica", received.Get("assunto"))
	assert.Equal(t, "Preciso de ajuda", received.Get("mensagem"))
	assert.Equal(t, "Nova solicitação: Cesta básica", received.Get("_subject"))
	assert.Equal(t, "false", received.Get("_captcha"))
}

func TestDemandSend_EndpointRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewDemandService(server.URL)
	err := svc.Send(context.Background(), &DemandInput{Name: "João", Subject: "x", Message: "y"})
	assert.ErrorIs(t, err, ErrDemandRelayFailed)
}

func TestDemandSend_Disabled(t *testing.T) {
	svc := NewDemandService("")
	assert.False(t, svc.IsEnabled())

	// A disabled relay drops the demand without error
	err := svc.Send(context.Background(), &DemandInput{Name: "João", Subject: "x", Message: "y"})
	assert.NoError(t, err)
}
