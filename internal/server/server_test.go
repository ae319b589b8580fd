package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

type fakeRasterizer struct {
	block chan struct{}
	err   error
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, html string, _ export.PageOptions) ([]byte, error) {
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7 " + html[:10]), nil
}

type testServer struct {
	*Server
	kv storage.KV
}

func newTestServer(t *testing.T, raster export.Rasterizer) *testServer {
	t.Helper()
	ctx := context.Background()
	logger := log.New(io.Discard)
	kv := storage.NewMemoryKV()

	renderer, err := rendering.NewRenderer()
	require.NoError(t, err)

	s := New(Config{Port: 0}, Deps{
		Store:    document.NewStore(ctx, kv, logger),
		Registry: templates.NewRegistry(ctx, kv, logger),
		Renderer: renderer,
		Exports:  export.NewService(export.NewPDFExporter(raster, export.DefaultPageOptions(), logger), logger),
		Logger:   logger,
	})
	return &testServer{Server: s, kv: kv}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	w := s.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	w := s.do(t, http.MethodOptions, "/document/skills", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestDocument_PersonalInfoAndSummary(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	w := s.do(t, http.MethodPatch, "/document/personal-info", `{"fullName":"Jane Doe","email":"jane@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/document/summary", `{"summary":"Builds things"}`)
	require.Equal(t, http.StatusOK, w.Code)

	doc := decode[types.ResumeDocument](t, s.do(t, http.MethodGet, "/document", ""))
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, "jane@example.com", doc.PersonalInfo.Email)
	assert.Equal(t, "Builds things", doc.Summary)

	raw, ok, err := s.kv.Get(context.Background(), document.DocumentKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, "Jane Doe")
}

func TestDocument_InvalidBody(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	w := s.do(t, http.MethodPut, "/document/summary", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "invalid request body")
}

func TestDocument_CollectionLifecycle(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	w := s.do(t, http.MethodPost, "/document/experience", `{"company":"Acme","position":"Engineer","startDate":"2021-01","current":true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[types.WorkExperience](t, w)
	require.NotEmpty(t, created.ID)

	w = s.do(t, http.MethodPatch, "/document/experience/"+created.ID, `{"position":"Staff Engineer"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	doc := decode[types.ResumeDocument](t, w)
	require.Len(t, doc.WorkExperience, 1)
	assert.Equal(t, "Staff Engineer", doc.WorkExperience[0].Position)
	assert.Equal(t, "Acme", doc.WorkExperience[0].Company)

	w = s.do(t, http.MethodDelete, "/document/experience/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[types.ResumeDocument](t, w).WorkExperience)
}

func TestDocument_NoteCollections(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	for _, c := range []string{"achievements", "awards", "certifications"} {
		w := s.do(t, http.MethodPost, "/document/"+c, `{"description":"Did a thing","date":"2020-03"}`)
		require.Equal(t, http.StatusCreated, w.Code, c)
	}

	doc := decode[types.ResumeDocument](t, s.do(t, http.MethodGet, "/document", ""))
	assert.Len(t, doc.Achievements, 1)
	assert.Len(t, doc.Awards, 1)
	assert.Len(t, doc.Certifications, 1)
}

func TestDocument_CustomSections(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	w := s.do(t, http.MethodPost, "/document/custom-sections", `{"title":"Projects","type":"list","content":{"items":["one"]}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[types.CustomSection](t, w)
	assert.Equal(t, 1, created.Order)

	w = s.do(t, http.MethodPatch, "/document/custom-sections/"+created.ID, `{"type":"paragraph","content":{"text":"now prose"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	doc := decode[types.ResumeDocument](t, w)
	require.Len(t, doc.CustomSections, 1)
	assert.Equal(t, types.ParagraphContent{Text: "now prose"}, doc.CustomSections[0].Content)
	assert.Equal(t, "Projects", doc.CustomSections[0].Title)

	w = s.do(t, http.MethodPatch, "/document/custom-sections/"+created.ID, `{"type":"chart"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocument_CustomSectionContentKeepsType(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	w := s.do(t, http.MethodPost, "/document/custom-sections", `{"title":"Languages","type":"list","content":{"items":["old"]}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[types.CustomSection](t, w)

	w = s.do(t, http.MethodPatch, "/document/custom-sections/"+created.ID, `{"content":{"items":["new","newer"]}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	doc := decode[types.ResumeDocument](t, w)
	require.Len(t, doc.CustomSections, 1)
	assert.Equal(t, types.ListContent{Items: []string{"new", "newer"}}, doc.CustomSections[0].Content)

	w = s.do(t, http.MethodPatch, "/document/custom-sections/"+created.ID, `{"content":{"items":"not a list"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, types.ListContent{Items: []string{"new", "newer"}}, s.store.Document().CustomSections[0].Content)
}

func TestDocument_Errors(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"unknown collection", http.MethodPost, "/document/hobbies", `{}`, http.StatusNotFound},
		{"missing id on update", http.MethodPatch, "/document/skills/nope", `{"name":"Go"}`, http.StatusNotFound},
		{"missing id on remove", http.MethodDelete, "/document/awards/nope", "", http.StatusNotFound},
		{"invalid entity", http.MethodPost, "/document/skills", `{"name":""}`, http.StatusBadRequest},
		{"invalid date", http.MethodPost, "/document/education", `{"institution":"MIT","startDate":"June"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestDocument_Reset(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})
	s.do(t, http.MethodPut, "/document/summary", `{"summary":"x"}`)

	w := s.do(t, http.MethodDelete, "/document", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[types.ResumeDocument](t, w).Summary)
}

func TestTemplates(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	list := decode[map[string]any](t, s.do(t, http.MethodGet, "/templates", ""))
	assert.EqualValues(t, 11, list["count"])
	assert.Equal(t, "modern", list["selected"])

	w := s.do(t, http.MethodPut, "/templates/overrides/colors", `{"primary":"#ff0000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	active := decode[ActiveTemplateResponse](t, w)
	assert.Equal(t, types.Colors{"primary": "#ff0000"}, active.Style.Colors)

	w = s.do(t, http.MethodPut, "/templates/active", `{"id":"classic"}`)
	require.Equal(t, http.StatusOK, w.Code)
	active = decode[ActiveTemplateResponse](t, w)
	assert.Equal(t, "classic", active.ID)
	assert.Nil(t, active.Overrides.Colors, "selecting a template clears overrides")
	assert.Nil(t, active.Overrides.Typography)

	w = s.do(t, http.MethodPut, "/templates/active", `{"id":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/templates/overrides/typography", `{"headingFont":"Inter","bodyFont":"Inter"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Inter", decode[ActiveTemplateResponse](t, w).Style.Typography.HeadingFont)

	w = s.do(t, http.MethodPut, "/templates/overrides/typography", `null`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[ActiveTemplateResponse](t, w).Overrides.Typography)

	w = s.do(t, http.MethodDelete, "/templates/overrides", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPreview(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})
	s.do(t, http.MethodPatch, "/document/personal-info", `{"fullName":"Jane Doe"}`)
	s.do(t, http.MethodPut, "/templates/active", `{"id":"sidebar"}`)

	w := s.do(t, http.MethodGet, "/preview", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `class="resume-preview layout-sidebar"`)
	assert.Contains(t, w.Body.String(), "Jane Doe")
}

func TestPreviewStream(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/preview/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := bufio.NewReader(resp.Body)
	next := func() PreviewEvent {
		t.Helper()
		var event string
		for {
			line, err := events.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				require.Equal(t, "preview", event)
				var p PreviewEvent
				require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &p))
				return p
			}
		}
	}

	first := next()
	assert.Equal(t, "modern", first.TemplateID)
	assert.Contains(t, first.HTML, "Your Name")

	s.store.UpdatePersonalInfo(context.Background(), types.PersonalInfoPatch{FullName: ptr("Jane Doe")})
	assert.Contains(t, next().HTML, "Jane Doe")
}

func TestExportDOCX(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})
	s.do(t, http.MethodPatch, "/document/personal-info", `{"fullName":"Jane Doe"}`)

	w := s.do(t, http.MethodPost, "/export/docx", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.DOCXContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Jane Doe.docx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String()[:2])
}

func TestExportPDF(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{})

	w := s.do(t, http.MethodPost, "/export/pdf", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.PDFContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=Resume.pdf`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportPDF_Failure(t *testing.T) {
	s := newTestServer(t, &fakeRasterizer{err: assert.AnError})

	w := s.do(t, http.MethodPost, "/export/pdf", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, s.exports.Guard().InFlight(export.KindPDF))
}

func TestExportPDF_Busy(t *testing.T) {
	raster := &fakeRasterizer{block: make(chan struct{})}
	s := newTestServer(t, raster)

	done := make(chan int, 1)
	go func() { done <- s.do(t, http.MethodPost, "/export/pdf", "").Code }()
	require.Eventually(t, func() bool { return s.exports.Guard().InFlight(export.KindPDF) }, time.Second, time.Millisecond)

	w := s.do(t, http.MethodPost, "/export/pdf", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	close(raster.block)
	assert.Equal(t, http.StatusOK, <-done)
}

func ptr[T any](v T) *T { return &v }
