package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/upstream"
)

func TestDrawingClient_List(t *testing.T) {
	projectID := uuid.New()
	drawingID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects/"+projectID.String()+"/drawings", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"` + drawingID.String() + `","name":"Ground Floor Plan","is_issued":true}]}`))
	}))
	defer srv.Close()

	client := upstream.NewDrawingClient(upstream.NewClientWithEndpoint(srv.URL))
	drawings, err := client.List(context.Background(), "tok-123", projectID)

	require.NoError(t, err)
	require.Len(t, drawings, 1)
	assert.Equal(t, drawingID, drawings[0].ID)
	assert.Equal(t, "Ground Floor Plan", drawings[0].Name)
	assert.True(t, drawings[0].IsIssued)
}

func TestDrawingClient_Get_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"drawing not found"}}`))
	}))
	defer srv.Close()

	client := upstream.NewDrawingClient(upstream.NewClientWithEndpoint(srv.URL))
	_, err := client.Get(context.Background(), "tok", uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "drawing not found")
}

func TestDrawingClient_Approve_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"FORBIDDEN","message":"forbidden"}}`))
	}))
	defer srv.Close()

	client := upstream.NewDrawingClient(upstream.NewClientWithEndpoint(srv.URL))
	_, err := client.Approve(context.Background(), "tok", uuid.New())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDrawingClient_Upload_StreamsMultipart(t *testing.T) {
	drawingID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drawings/"+drawingID.String()+"/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "plan_r2.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"` + drawingID.String() + `","under_review":true,"file_url":"https://cdn.example.com/plan_r2.pdf"}}`))
	}))
	defer srv.Close()

	client := upstream.NewDrawingClient(upstream.NewClientWithEndpoint(srv.URL))
	d, err := client.Upload(context.Background(), "tok", port.DrawingUploadInput{
		DrawingID:   drawingID,
		FileName:    "plan_r2.pdf",
		ContentType: "application/pdf",
		Size:        11,
		Body:        strings.NewReader("pdf content"),
	})

	require.NoError(t, err)
	assert.True(t, d.UnderReview)
	assert.NotEmpty(t, d.FileURL)
}

func TestDrawingClient_Upload_RejectsOversize(t *testing.T) {
	client := upstream.NewDrawingClient(upstream.NewClientWithEndpoint("http://unused.invalid"))
	_, err := client.Upload(context.Background(), "tok", port.DrawingUploadInput{
		DrawingID: uuid.New(),
		FileName:  "huge.pdf",
		Size:      51 * 1024 * 1024,
		Body:      strings.NewReader(""),
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestNotificationClient_UnreadCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/count", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"unread":7}}`))
	}))
	defer srv.Close()

	client := upstream.NewNotificationClient(upstream.NewClientWithEndpoint(srv.URL))
	count, err := client.UnreadCount(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestAccountClient_Register_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := upstream.NewAccountClient(upstream.NewClientWithEndpoint(srv.URL))
	err := client.Register(context.Background(), domain.RegistrationRequest{
		Name:  "New Vendor",
		Email: "vendor@example.com",
		Role:  "vendor",
	})
	assert.NoError(t, err)
}

func TestClient_FailedEnvelopeOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// 200 with a failed envelope; the data field must not be trusted.
		_, _ = w.Write([]byte(`{"success":false,"data":[{"id":"00000000-0000-0000-0000-000000000001"}],"error":{"code":"STALE","message":"project archive in progress"}}`))
	}))
	defer srv.Close()

	client := upstream.NewProjectClient(upstream.NewClientWithEndpoint(srv.URL))
	projects, err := client.List(context.Background(), "tok")

	assert.Nil(t, projects)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "project archive in progress")
}

func TestClient_SuccessFalseWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"data":[]}`))
	}))
	defer srv.Close()

	client := upstream.NewProjectClient(upstream.NewClientWithEndpoint(srv.URL))
	_, err := client.List(context.Background(), "tok")

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_UpstreamErrorOn500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := upstream.NewProjectClient(upstream.NewClientWithEndpoint(srv.URL))
	_, err := client.List(context.Background(), "tok")

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
