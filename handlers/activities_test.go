package handlers

import "net/http"

func (s *APITestSuite) TestCreateAdjustDashboard() {
	id := s.createActivity("Pushups", "reps-male", 20)

	_, envelope := s.do("GET", "/date", nil)
	today, _ := s.data(envelope)["date"].(string)
	s.Require().NotEmpty(today)

	// Five +1 clicks at 5 per click.
	for i := 0; i < 5; i++ {
		status, adj := s.do("POST", "/logs/"+today+"/"+id+"/adjust", map[string]interface{}{"direction": 1})
		s.Equal(http.StatusOK, status)
		s.Equal(float64(5), s.data(adj)["step"])
	}

	status, dash := s.do("GET", "/dashboard", nil)
	s.Require().Equal(http.StatusOK, status)
	payload := s.data(dash)

	summary := payload["summary"].(map[string]interface{})
	s.Equal(float64(1), summary["totalActivities"])
	s.Equal(float64(1), summary["completedCount"])
	s.Equal(float64(100), summary["percentage"])

	completed := payload["completed"].([]interface{})
	s.Require().Len(completed, 1)
	card := completed[0].(map[string]interface{})
	s.Equal(id, card["id"])
	s.Equal(float64(25), card["value"])
	s.Equal(float64(100), card["progress"])
	s.Empty(payload["active"].([]interface{}))
}

func (s *APITestSuite) TestCreateValidation() {
	for name, body := range map[string]map[string]interface{}{
		"empty name":   {"name": "", "unit": "steps", "goal": 100},
		"unknown unit": {"name": "Walk", "unit": "parsec", "goal": 100},
		"negative":     {"name": "Walk", "unit": "steps", "goal": -1},
	} {
		status, envelope := s.do("POST", "/activities", body)
		s.Equal(http.StatusBadRequest, status, name)
		s.Equal("VALIDATION_ERROR", s.errorCode(envelope), name)
	}

	status, _ := s.do("GET", "/activities", nil)
	s.Equal(http.StatusOK, status)
	s.Empty(s.engine.List())
}

func (s *APITestSuite) TestUpdateKeepsOrder() {
	first := s.createActivity("One", "min", 5)
	s.createActivity("Two", "steps", 10000)

	status, envelope := s.do("PATCH", "/activities/"+first, map[string]interface{}{
		"name": "One edited", "unit": "steps", "goal": 500,
	})
	s.Require().Equal(http.StatusOK, status)
	s.Equal("🚶", s.data(envelope)["icon"])

	list := s.engine.List()
	s.Require().Len(list, 2)
	s.Equal("One edited", list[0].Name)
	s.Equal("Two", list[1].Name)

	status, envelope = s.do("PATCH", "/activities/missing", map[string]interface{}{
		"name": "X", "unit": "min", "goal": 1,
	})
	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", s.errorCode(envelope))
}

func (s *APITestSuite) TestDeleteCascades() {
	gone := s.createActivity("Pushups", "reps-male", 20)
	kept := s.createActivity("Walk", "steps", 10000)

	s.do("PUT", "/logs/2026-01-01/"+gone, map[string]interface{}{"value": 25})
	s.do("PUT", "/logs/2026-01-01/"+kept, map[string]interface{}{"value": 4000})

	status, _ := s.do("DELETE", "/activities/"+gone, nil)
	s.Require().Equal(http.StatusOK, status)

	s.Require().Len(s.engine.List(), 1)
	s.Equal(float64(0), s.engine.Value("2026-01-01", gone))
	s.Equal(float64(4000), s.engine.Value("2026-01-01", kept))

	status, envelope := s.do("GET", "/activities/"+gone+"/series", nil)
	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", s.errorCode(envelope))

	status, envelope = s.do("DELETE", "/activities/"+gone, nil)
	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", s.errorCode(envelope))
}

func (s *APITestSuite) TestSetValueClamps() {
	id := s.createActivity("Walk", "steps", 10000)

	status, envelope := s.do("PUT", "/logs/2026-01-01/"+id, map[string]interface{}{"value": -10})
	s.Require().Equal(http.StatusOK, status)
	s.Equal(float64(0), s.data(envelope)["value"])

	status, envelope = s.do("POST", "/logs/2026-01-01/"+id+"/adjust", map[string]interface{}{"direction": -2})
	s.Require().Equal(http.StatusOK, status)
	s.Equal(float64(0), s.data(envelope)["value"])
}

func (s *APITestSuite) TestLogsUnknownActivityAndBadDate() {
	status, envelope := s.do("POST", "/logs/2026-01-01/missing/adjust", map[string]interface{}{"direction": 1})
	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", s.errorCode(envelope))

	id := s.createActivity("Walk", "steps", 10000)
	status, envelope = s.do("PUT", "/logs/yesterday/"+id, map[string]interface{}{"value": 1})
	s.Equal(http.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", s.errorCode(envelope))
}

func (s *APITestSuite) TestSeriesParams() {
	id := s.createActivity("Walk", "steps", 10000)
	for _, date := range []string{"2026-01-01", "2026-01-02", "2026-01-03"} {
		s.do("PUT", "/logs/"+date+"/"+id, map[string]interface{}{"value": 100})
	}

	status, envelope := s.do("GET", "/activities/"+id+"/series?maxPoints=2", nil)
	s.Require().Equal(http.StatusOK, status)
	points := s.data(envelope)["points"].([]interface{})
	s.Require().Len(points, 2)
	first := points[0].(map[string]interface{})
	s.Equal("2026-01-02", first["date"])

	status, envelope = s.do("GET", "/activities/"+id+"/series?maxPoints=zero", nil)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", s.errorCode(envelope))
}
