package handlers

import (
	"net/http"
	"time"

	"sport-tracker-api/models"
)

func (s *APITestSuite) TestDateNavigation() {
	_, envelope := s.do("GET", "/date", nil)
	today := s.data(envelope)["date"].(string)
	s.Equal(models.DateKey(time.Now()), today)

	status, envelope := s.do("POST", "/date/shift", map[string]interface{}{"days": 1})
	s.Require().Equal(http.StatusOK, status)
	base, err := models.ParseDateKey(today)
	s.Require().NoError(err)
	s.Equal(models.DateKey(base.AddDate(0, 0, 1)), s.data(envelope)["date"])

	// Unbounded in both directions.
	status, envelope = s.do("POST", "/date/shift", map[string]interface{}{"days": -4000})
	s.Require().Equal(http.StatusOK, status)

	status, envelope = s.do("PUT", "/date", map[string]interface{}{"date": "2026-02-14"})
	s.Require().Equal(http.StatusOK, status)
	s.Equal("2026-02-14", s.data(envelope)["date"])

	status, envelope = s.do("PUT", "/date", map[string]interface{}{"date": "14.02.2026"})
	s.Equal(http.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", s.errorCode(envelope))

	status, envelope = s.do("POST", "/date/shift", map[string]interface{}{})
	s.Equal(http.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", s.errorCode(envelope))
}

func (s *APITestSuite) TestDashboardExplicitAndBadDate() {
	id := s.createActivity("Walk", "steps", 100)
	s.do("PUT", "/logs/2026-02-14/"+id, map[string]interface{}{"value": 100})

	status, envelope := s.do("GET", "/dashboard?date=2026-02-14", nil)
	s.Require().Equal(http.StatusOK, status)
	payload := s.data(envelope)
	s.Equal("2026-02-14", payload["date"])
	summary := payload["summary"].(map[string]interface{})
	s.Equal(float64(1), summary["completedCount"])

	status, envelope = s.do("GET", "/dashboard?date=soon", nil)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", s.errorCode(envelope))
}

func (s *APITestSuite) TestSetView() {
	status, envelope := s.do("PUT", "/view", map[string]interface{}{"view": "analytics"})
	s.Require().Equal(http.StatusOK, status)
	s.Equal("analytics", s.data(envelope)["view"])
	s.Equal("analytics", s.engine.View())

	status, envelope = s.do("PUT", "/view", map[string]interface{}{"view": ""})
	s.Equal(http.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", s.errorCode(envelope))
}

func (s *APITestSuite) TestHealth() {
	resp, err := http.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}
