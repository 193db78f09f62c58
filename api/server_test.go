package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestHandleSyllables(t *testing.T) {
	s := NewServer(":0")

	body, _ := json.Marshal(SyllablesRequest{Text: "a lovely poem"})
	req := httptest.NewRequest("POST", "/v1/syllables", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp SyllablesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 5 {
		t.Errorf("Count = %d, want 5", resp.Count)
	}
}

func TestHandleExecute(t *testing.T) {
	s := NewServer(":0")

	body, _ := json.Marshal(ExecuteRequest{Source: "test,"})
	req := httptest.NewRequest("POST", "/v1/execute", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp ExecuteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.InstructionLen != 1 {
		t.Errorf("InstructionLen = %d, want 1", resp.InstructionLen)
	}
}

func TestHandleHealth(t *testing.T) {
	s := NewServer(":0")

	req := httptest.NewRequest("GET", "/v1/health", nil)
	rec := httptest.NewRecorder()

	s.mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
