package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courierhub/cmd"
	"courierhub/internal/adapters/out/postgres/testdb"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type ServerSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	db := testdb.Open(s.T())
	root, err := cmd.NewCompositionRoot(cmd.Config{
		Numbering: cmd.NumberingConfig{NodeID: 1},
	}, db, zap.NewNop())
	s.Require().NoError(err)

	_, err = root.SeedStatuses(s.T().Context())
	s.Require().NoError(err)

	s.e = root.CreateServer().NewEcho()
}

func (s *ServerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) decode(rec *httptest.ResponseRecorder, into any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), into), rec.Body.String())
}

func (s *ServerSuite) register(name, role string) string {
	rec := s.do(http.MethodPost, "/api/v1/users", map[string]string{"name": name, "role": role})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var out map[string]string
	s.decode(rec, &out)
	return out["id"]
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerSuite) TestListStatuses() {
	rec := s.do(http.MethodGet, "/api/v1/statuses", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var statuses []map[string]any
	s.decode(rec, &statuses)
	s.Len(statuses, 21)
	s.Equal("PENDING", statuses[0]["name"])
	s.Equal(true, statuses[0]["required"])
}

func (s *ServerSuite) TestShipmentToPayout() {
	merchant := s.register("Acme", "MERCHANT")
	courier := s.register("Sam", "COURIER")

	rec := s.do(http.MethodPost, "/api/v1/zones", map[string]any{"name": "Downtown", "default_fee": "100.00"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var zone map[string]any
	s.decode(rec, &zone)

	rec = s.do(http.MethodPost, "/api/v1/shipments", map[string]string{
		"merchant_id":  merchant,
		"zone_id":      zone["id"].(string),
		"recipient_id": merchant,
		"item_value":   "120.00",
		"cod_amount":   "170.00",
		"priority":     "express",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]string
	s.decode(rec, &created)
	s.Equal("150.00", created["delivery_fee"])
	s.Equal("zone_default", created["fee_source"])
	s.True(strings.HasPrefix(created["tracking_number"], "CS-"))

	rec = s.do(http.MethodPost, "/api/v1/warehouse/receive",
		map[string][]string{"tracking_numbers": {created["tracking_number"]}})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/warehouse/dispatch", map[string]any{
		"courier_id":   courier,
		"shipment_ids": []string{created["id"]},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var batch struct {
		Processed int      `json:"processed"`
		Errors    []string `json:"errors"`
	}
	s.decode(rec, &batch)
	s.Equal(1, batch.Processed)
	s.Empty(batch.Errors)

	rec = s.do(http.MethodPost, "/api/v1/shipments/"+created["id"]+"/status", map[string]string{"status": "DELIVERED"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var delivered map[string]any
	s.decode(rec, &delivered)
	s.Equal("DELIVERED", delivered["status"])
	s.Equal(courier, delivered["courier_id"])
	s.NotNil(delivered["delivered_at"])

	rec = s.do(http.MethodGet, "/api/v1/tracking/"+created["tracking_number"]+"/history", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var history struct {
		Status  string `json:"status"`
		History []struct {
			Status string `json:"status"`
		} `json:"history"`
	}
	s.decode(rec, &history)
	s.Equal("DELIVERED", history.Status)
	s.Require().Len(history.History, 4)
	s.Equal("PENDING_APPROVAL", history.History[0].Status)
	s.Equal("DELIVERED", history.History[3].Status)

	now := time.Now().UTC()
	period := map[string]any{
		"user_id":      courier,
		"period_start": now.Add(-time.Hour),
		"period_end":   now.Add(time.Hour),
	}
	rec = s.do(http.MethodPost, "/api/v1/payouts/courier", period)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var payout map[string]any
	s.decode(rec, &payout)
	s.Equal("105.00", payout["net_amount"])
	s.EqualValues(1, payout["item_count"])

	rec = s.do(http.MethodPost, "/api/v1/payouts/courier", period)
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	payoutID := payout["id"].(string)
	rec = s.do(http.MethodPatch, "/api/v1/payouts/"+payoutID+"/status", map[string]string{"status": "PAID"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var paid map[string]any
	s.decode(rec, &paid)
	s.Equal("PAID", paid["status"])
	s.NotNil(paid["paid_at"])

	rec = s.do(http.MethodGet, "/api/v1/payouts/"+payoutID, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var full struct {
		Type  string `json:"type"`
		Items []struct {
			SourceID string `json:"source_id"`
			Amount   string `json:"amount"`
		} `json:"items"`
	}
	s.decode(rec, &full)
	s.Equal("COURIER_SETTLEMENT", full.Type)
	s.Require().Len(full.Items, 1)
	s.Equal(created["id"], full.Items[0].SourceID)
	s.Equal("105.00", full.Items[0].Amount)
}

func (s *ServerSuite) TestWarehouseBatchesReportMalformedIDsPerItem() {
	merchant := s.register("Acme", "MERCHANT")
	courier := s.register("Sam", "COURIER")

	rec := s.do(http.MethodPost, "/api/v1/zones", map[string]any{"name": "Uptown", "default_fee": "80.00"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var zone map[string]any
	s.decode(rec, &zone)

	rec = s.do(http.MethodPost, "/api/v1/shipments", map[string]string{
		"merchant_id":  merchant,
		"zone_id":      zone["id"].(string),
		"recipient_id": merchant,
		"item_value":   "10.00",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]string
	s.decode(rec, &created)

	rec = s.do(http.MethodPost, "/api/v1/warehouse/receive",
		map[string][]string{"tracking_numbers": {created["tracking_number"]}})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	type batch struct {
		Processed int      `json:"processed"`
		Errors    []string `json:"errors"`
	}

	rec = s.do(http.MethodPost, "/api/v1/warehouse/dispatch", map[string]any{
		"courier_id":   courier,
		"shipment_ids": []string{"not-a-uuid", created["id"]},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var dispatched batch
	s.decode(rec, &dispatched)
	s.Equal(1, dispatched.Processed)
	s.Require().Len(dispatched.Errors, 1)
	s.True(strings.HasPrefix(dispatched.Errors[0], "not-a-uuid: "), dispatched.Errors[0])

	rec = s.do(http.MethodPost, "/api/v1/warehouse/reconcile", map[string]any{
		"courier_id":         courier,
		"cash_confirmed_ids": []string{"bad-1"},
		"returned_ids":       []string{"bad-2"},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var reconciled batch
	s.decode(rec, &reconciled)
	s.Zero(reconciled.Processed)
	s.Require().Len(reconciled.Errors, 2)
	s.True(strings.HasPrefix(reconciled.Errors[0], "bad-1: "))
	s.True(strings.HasPrefix(reconciled.Errors[1], "bad-2: "))
}

func (s *ServerSuite) TestErrorMapping() {
	merchant := s.register("Acme", "MERCHANT")

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown shipment", http.MethodPost, "/api/v1/shipments/8a1f7d56-5f55-4c8e-9a43-0c1b7f1b2d10/status",
			map[string]string{"status": "DELIVERED"}, http.StatusNotFound},
		{"malformed id", http.MethodPost, "/api/v1/shipments/not-a-uuid/status",
			map[string]string{"status": "DELIVERED"}, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/v1/statuses", "{", http.StatusBadRequest},
		{"duplicate status", http.MethodPost, "/api/v1/statuses",
			map[string]any{"name": "DELIVERED", "position": 99}, http.StatusConflict},
		{"unknown role", http.MethodPost, "/api/v1/users",
			map[string]string{"name": "Bob", "role": "courier"}, http.StatusBadRequest},
		{"dispatch to a merchant", http.MethodPost, "/api/v1/warehouse/dispatch",
			map[string]any{"courier_id": merchant, "shipment_ids": []string{merchant}}, http.StatusForbidden},
		{"unknown tracking number", http.MethodGet, "/api/v1/tracking/CS-NOPE/history", nil, http.StatusNotFound},
		{"empty receive", http.MethodPost, "/api/v1/warehouse/receive",
			map[string][]string{"tracking_numbers": {}}, http.StatusBadRequest},
		{"bad fee", http.MethodPut, "/api/v1/settings/default-delivery-fee",
			map[string]string{"fee": "abc"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(tt.method, tt.path, tt.body)
			s.Equal(tt.want, rec.Code, rec.Body.String())

			var body struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			}
			s.decode(rec, &body)
			s.Equal(tt.want, body.Code)
			s.NotEmpty(body.Message)
		})
	}
}

func (s *ServerSuite) TestStatusLifecycle() {
	rec := s.do(http.MethodPost, "/api/v1/statuses", map[string]any{"name": "AWAITING_PICKUP", "position": 30})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]any
	s.decode(rec, &created)
	s.Equal(false, created["required"])
	id := created["id"].(string)

	rec = s.do(http.MethodPatch, "/api/v1/statuses/"+id, map[string]string{"name": "AWAITING_COLLECTION"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodDelete, "/api/v1/statuses/"+id, nil)
	s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/statuses/seed", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var seeded map[string]int
	s.decode(rec, &seeded)
	s.Equal(0, seeded["inserted"])
}
