package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func uploadFile(router http.Handler, token, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", filename)
	_, _ = fw.Write(content)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/contracts/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadContract(t *testing.T) {
	env := newTestEnv(&fakeGenerator{completion: `[{"logic":"uptime < 99.5%","penalty":"5% credit"}]`})

	w := uploadFile(env.router, env.token(), "msa.txt", []byte("Vendor guarantees 99.5% uptime."))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		ContractID string `json:"contract_id"`
		FileURL    string `json:"file_url"`
		Rules      []struct {
			Logic   string `json:"logic"`
			Penalty string `json:"penalty"`
		} `json:"rules"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.ContractID == "" {
		t.Error("expected contract_id in response")
	}
	if len(resp.Rules) != 1 || resp.Rules[0].Penalty != "5% credit" {
		t.Errorf("unexpected rules: %+v", resp.Rules)
	}

	// the blob must be in the store under the returned object name
	if _, ok := env.store.data[resp.FileURL]; !ok {
		t.Errorf("uploaded blob not stored under %q", resp.FileURL)
	}
}

func TestUploadContractRejectsExtension(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})

	for _, name := range []string{"macro.docx", "sheet.xlsx", "script.sh"} {
		w := uploadFile(env.router, env.token(), name, []byte("x"))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, w.Code)
		}
	}
	if len(env.contracts.created) != 0 {
		t.Error("rejected uploads must not create contracts")
	}
}

func TestUploadContractMissingFile(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})

	w := postJSON(env.router, "/api/contracts/upload", env.token(), map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListContracts(t *testing.T) {
	env := newTestEnv(&fakeGenerator{})
	_, _ = env.contracts.Create(nil, newContractReq(env.userID))

	w := getJSON(env.router, "/api/contracts", env.token())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Contracts []struct {
			FileURL string `json:"file_url"`
		} `json:"contracts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Contracts) != 1 || resp.Contracts[0].FileURL != "docs/contract.txt" {
		t.Errorf("unexpected contracts: %+v", resp.Contracts)
	}
}
