package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentService struct {
	records map[string]*models.BussingRecord
	err     error
}

func (s *stubPaymentService) ReconcilePayment(_ context.Context, reference, status string) (*models.BussingRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	record, ok := s.records[reference]
	if !ok {
		return nil, services.ErrUnreconciledPayment
	}
	record.TransactionStatus = status
	return record, nil
}

func (s *stubPaymentService) PollPendingPayments(_ context.Context) (int, error) {
	return 0, nil
}

func webhookRouter(svc services.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/webhooks/paystack", NewPaymentHandler(svc).Webhook)
	return router
}

func postWebhook(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/paystack", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestWebhook_ReconcilesMatchedReference(t *testing.T) {
	svc := &stubPaymentService{records: map[string]*models.BussingRecord{
		"ref-1": {ID: "record-1", TransactionReference: "ref-1"},
	}}
	router := webhookRouter(svc)

	w := postWebhook(router, `{"data":{"reference":"ref-1","status":"success"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "success", svc.records["ref-1"].TransactionStatus)
}

func TestWebhook_UnmatchedReferenceIs404(t *testing.T) {
	router := webhookRouter(&stubPaymentService{records: map[string]*models.BussingRecord{}})

	w := postWebhook(router, `{"data":{"reference":"ref-unknown","status":"success"}}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unreconciled", body["status"])
}

func TestWebhook_MalformedPayloadIs400(t *testing.T) {
	router := webhookRouter(&stubPaymentService{})

	for _, payload := range []string{
		`not json`,
		`{}`,
		`{"data":{"status":"success"}}`,
	} {
		w := postWebhook(router, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %q", payload)
	}
}

func TestWebhook_StoreFailureIs500(t *testing.T) {
	router := webhookRouter(&stubPaymentService{err: fmt.Errorf("connection reset")})

	w := postWebhook(router, `{"data":{"reference":"ref-1","status":"success"}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail must not leak to unauthenticated senders
	assert.NotContains(t, w.Body.String(), "connection reset")
}
