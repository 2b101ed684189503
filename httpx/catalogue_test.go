package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adeilh/go-rakh-status/status"
)

func newCatalogueClient(t *testing.T) *Client {
	t.Helper()
	server := NewServer()
	server.RegisterRoutes(CatalogueRoutes("/v1"))

	ts := NewTestServer(server.Handler())
	t.Cleanup(ts.Close)

	return NewClient(WithBaseURL(ts.BaseURL()))
}

func TestCatalogueListStatuses(t *testing.T) {
	client := newCatalogueClient(t)

	var out []StatusView
	resp, err := client.Get(context.Background(), "/v1/statuses", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode())
	}
	if len(out) != len(status.Known()) {
		t.Fatalf("unexpected count: %d", len(out))
	}
	want := StatusView{Code: 100, Name: "Continue", Class: "Informational Responses"}
	if out[0] != want {
		t.Fatalf("unexpected first entry: %#v", out[0])
	}
}

func TestCatalogueGetStatus(t *testing.T) {
	client := newCatalogueClient(t)

	var out StatusView
	resp, err := client.Get(context.Background(), "/v1/statuses/418", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := StatusView{Code: 418, Name: "I'm a Teapot", Class: "Client Error Responses"}
	if out != want {
		t.Fatalf("unexpected body: %#v", out)
	}
	if got := resp.Header().Get(HeaderStatusClass); got != "Successful Responses" {
		t.Fatalf("unexpected class header: %q", got)
	}
}

func TestCatalogueGetStatusErrors(t *testing.T) {
	client := newCatalogueClient(t)

	tests := []struct {
		path  string
		code  int
		error string
	}{
		{"/v1/statuses/103", StatusNotFound, "status code not catalogued: 103"},
		{"/v1/statuses/999", StatusNotFound, "status code not catalogued: 999"},
		{"/v1/statuses/teapot", StatusBadRequest, "status code must be an integer: teapot"},
		{"/v1/classes/unknown/statuses", StatusNotFound, "unknown status class: unknown"},
	}
	for _, tt := range tests {
		resp, err := client.Get(context.Background(), tt.path, nil)
		var rerr *ResponseError
		if !errors.As(err, &rerr) {
			t.Fatalf("%s: expected *ResponseError, got %v", tt.path, err)
		}
		if rerr.Status.Code() != tt.code {
			t.Fatalf("%s: unexpected status %v", tt.path, rerr.Status)
		}
		var body ErrorBody
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			t.Fatalf("%s: decode error body: %v", tt.path, err)
		}
		if body.Error != tt.error || body.Code != tt.code {
			t.Fatalf("%s: unexpected body %#v", tt.path, body)
		}
		if body.Status != StatusText(tt.code) || body.Class != "Client Error Responses" {
			t.Fatalf("%s: missing catalogue metadata %#v", tt.path, body)
		}
	}
}

func TestCatalogueClasses(t *testing.T) {
	client := newCatalogueClient(t)

	var out []ClassView
	if _, err := client.Get(context.Background(), "/v1/classes", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []ClassView{
		{Slug: "informational", Name: "Informational Responses", Lower: 100, Upper: 199},
		{Slug: "successful", Name: "Successful Responses", Lower: 200, Upper: 299},
		{Slug: "redirection", Name: "Redirection Messages", Lower: 300, Upper: 399},
		{Slug: "client-error", Name: "Client Error Responses", Lower: 400, Upper: 499},
		{Slug: "server-error", Name: "Server Error Responses", Lower: 500, Upper: 599},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("unexpected classes (-want +got):\n%s", diff)
	}
}

func TestCatalogueClassStatuses(t *testing.T) {
	client := newCatalogueClient(t)

	var out []StatusView
	if _, err := client.Get(context.Background(), "/v1/classes/server-error/statuses", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var codes []int
	for _, v := range out {
		if v.Class != "Server Error Responses" {
			t.Fatalf("unexpected class for %d: %q", v.Code, v.Class)
		}
		codes = append(codes, v.Code)
	}
	want := []int{500, 501, 502, 503, 504, 505, 506, 507, 508, 510, 511}
	if diff := cmp.Diff(want, codes); diff != "" {
		t.Fatalf("unexpected codes (-want +got):\n%s", diff)
	}
}

func TestClassBySlug(t *testing.T) {
	for _, c := range status.Classes() {
		found := false
		for _, cs := range classSlugs {
			if cs.class == c {
				found = true
				if got, ok := ClassBySlug(cs.slug); !ok || got != c {
					t.Fatalf("ClassBySlug(%q) = %v, %v", cs.slug, got, ok)
				}
			}
		}
		if !found {
			t.Fatalf("class %q has no slug", c.Name)
		}
	}
	if _, ok := ClassBySlug("vendor"); ok {
		t.Fatalf("unexpected slug match")
	}
}
