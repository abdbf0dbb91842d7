package processor

import (
	"context"
	"os"

	"github.com/nguyentantai21042004/meeting-report/internal/transcriber"
)

// cleanupTempDir removes a temporary directory, logs warning if fails
func (p *implProcessor) cleanupTempDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}

// deleteUploaded removes the uploaded asset from Gemini. It runs after the
// pipeline step that needed it, so failures are only logged.
func (p *implProcessor) deleteUploaded(ctx context.Context, asset *transcriber.Asset) {
	ctx = context.WithoutCancel(ctx)
	if err := p.transcriber.Delete(ctx, asset); err != nil {
		p.logger.Warn(ctx, "Failed to delete uploaded file %s: %v", asset.Name, err)
	} else {
		p.logger.Debug(ctx, "Deleted uploaded file: %s", asset.Name)
	}
}
