// Command export downloads a project's drawing register as an xlsx workbook
// from the command line, for archiving or sharing outside the web UI.
// Usage: go run ./cmd/export -project <uuid> -token <bearer> [-out register.xlsx]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/config"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/upstream"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		projectFlag = flag.String("project", "", "project id (uuid)")
		tokenFlag   = flag.String("token", os.Getenv("FDIM_TOKEN"), "bearer token (defaults to FDIM_TOKEN)")
		outFlag     = flag.String("out", "", "output path (defaults to the generated filename)")
		roleFlag    = flag.String("role", "team_member", "viewer role used to shape the register")
		ownerFlag   = flag.Bool("owner", false, "treat the viewer as the firm owner")
	)
	flag.Parse()

	if *projectFlag == "" {
		return fmt.Errorf("-project is required")
	}
	if *tokenFlag == "" {
		return fmt.Errorf("-token or FDIM_TOKEN is required")
	}
	projectID, err := uuid.Parse(*projectFlag)
	if err != nil {
		return fmt.Errorf("invalid project id: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	base := upstream.NewClient(&cfg.Upstream)
	projectAPI := upstream.NewProjectClient(base)
	drawingAPI := upstream.NewDrawingClient(base)
	exportSvc := service.NewExportService(projectAPI, drawingAPI, cfg.Export.SheetName, cfg.Export.MaxRows)

	viewer := domain.Viewer{
		UserID:  uuid.New(),
		Role:    *roleFlag,
		IsOwner: *ownerFlag,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	export, err := exportSvc.Register(ctx, viewer, *tokenFlag, projectID)
	if err != nil {
		return fmt.Errorf("exporting register: %w", err)
	}

	path := *outFlag
	if path == "" {
		path = export.Filename
	}
	if err := os.WriteFile(path, export.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Printf("Wrote %s (%d bytes)", path, len(export.Content))
	return nil
}
