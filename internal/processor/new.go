package processor

import (
	"github.com/nguyentantai21042004/meeting-report/internal/config"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/report"
	"github.com/nguyentantai21042004/meeting-report/internal/spinner"
	"github.com/nguyentantai21042004/meeting-report/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-report/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-report/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	executor    executor.Executor
	spinner     *spinner.Spinner
	logger      logger.Logger
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	exec executor.Executor,
	spin *spinner.Spinner,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		summarizer:  sum,
		executor:    exec,
		spinner:     spin,
		logger:      log,
	}
}

func (p *implProcessor) writerFor(path string) report.Writer {
	return report.WriterFor(path, report.Options{
		PageSize: p.cfg.Report.PageSize,
		Margin:   p.cfg.Report.Margin,
		Font:     p.cfg.Report.Font,
		FontFile: p.cfg.Report.FontFile,
	})
}
