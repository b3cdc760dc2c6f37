package handlers

import (
	"io"
	"net/http"
	"os"
	"strings"

	"sport-tracker-api/storage"
)

func (s *APITestSuite) TestExportImportRoundTrip() {
	id := s.createActivity("Pushups", "reps-male", 20)
	s.do("PUT", "/logs/2026-01-01/"+id, map[string]interface{}{"value": 25})
	s.do("PUT", "/view", map[string]interface{}{"view": "analytics"})

	resp, err := http.Get(s.server.URL + "/state/export")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Disposition"), "sport-tracker-data.json")
	exported, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	// Wreck the state, then import the export back.
	status, _ := s.do("DELETE", "/activities/"+id, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Empty(s.engine.List())

	status, _ = s.importSnapshot(exported)
	s.Require().Equal(http.StatusOK, status)

	list := s.engine.List()
	s.Require().Len(list, 1)
	s.Equal(id, list[0].ID)
	s.Equal("Pushups", list[0].Name)
	s.Equal(float64(25), s.engine.Value("2026-01-01", id))
	s.Equal("analytics", s.engine.View())

	// The import was persisted before the handler replied.
	data, err := os.ReadFile(s.dataFile)
	s.Require().NoError(err)
	restored, err := storage.Decode(data)
	s.Require().NoError(err)
	s.Len(restored.Activities, 1)
}

func (s *APITestSuite) TestImportRejectsMalformed() {
	id := s.createActivity("Pushups", "reps-male", 20)
	s.do("PUT", "/logs/2026-01-01/"+id, map[string]interface{}{"value": 25})

	for name, payload := range map[string]string{
		"not json":    "not json at all",
		"wrong shape": `{"currentDate":"2026-01-01T00:00:00Z","activities":"oops","logs":{}}`,
	} {
		status, envelope := s.importSnapshot([]byte(payload))
		s.Equal(http.StatusBadRequest, status, name)
		s.Equal("CORRUPT_DATA", s.errorCode(envelope), name)
	}

	// Prior state is untouched by failed imports.
	s.Require().Len(s.engine.List(), 1)
	s.Equal(float64(25), s.engine.Value("2026-01-01", id))
}

func (s *APITestSuite) TestImportRejectsBinary() {
	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)
	status, envelope := s.importSnapshot(png)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("CORRUPT_DATA", s.errorCode(envelope))
	s.Contains(strings.ToLower(envelope["error"].(map[string]interface{})["message"].(string)), "json")
}

func (s *APITestSuite) TestImportMissingFile() {
	status, envelope := s.do("POST", "/state/import", map[string]interface{}{"data": "x"})
	s.Equal(http.StatusBadRequest, status)
	s.Equal("INVALID_REQUEST", s.errorCode(envelope))
}
