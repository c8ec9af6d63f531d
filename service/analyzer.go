package service

import (
	"bytes"
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/analysis"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/extract"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/model"
	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/pkg/logger"
)

// Analyzer runs the full pipeline for one uploaded contract and keeps
// the store record's status up to date. Report rendering and audit
// writes are best effort: once the analysis result is computed it is
// attached to the record even if those side effects fail.
type Analyzer struct {
	store    *AnalysisStore
	provider SummaryProvider
	renderer *ReportRenderer
	minio    *MinioService
	auditor  *Auditor
	lexicon  analysis.Lexicon
	workers  int
}

func NewAnalyzer(store *AnalysisStore, provider SummaryProvider, renderer *ReportRenderer, minioSvc *MinioService, auditor *Auditor) *Analyzer {
	return &Analyzer{
		store:    store,
		provider: provider,
		renderer: renderer,
		minio:    minioSvc,
		auditor:  auditor,
		lexicon:  analysis.DefaultLexicon,
	}
}

// Process extracts text from the uploaded bytes and runs the pipeline,
// updating the stored record through processing/completed/failed.
func (a *Analyzer) Process(ctx context.Context, run *model.Analysis, raw []byte) {
	ctx = context.WithValue(ctx, logger.AnalysisIDKey, run.ID)
	logger.Info(ctx, "analysis started", "filename", run.Filename)

	a.store.UpdateStatus(run.ID, model.StatusProcessing, "")

	text, err := extract.Text(run.Filename, bytes.NewReader(raw))
	if err != nil {
		logger.Error(ctx, "text extraction failed", "error", err)
		a.store.UpdateStatus(run.ID, model.StatusFailed, err.Error())
		return
	}

	result := a.Run(ctx, text)
	a.store.AttachResult(run.ID, result)

	logger.Info(ctx, "analysis completed",
		"contract_type", result.Classification.ContractType,
		"overall_risk", result.OverallRisk.String(),
		"clauses", len(result.Clauses),
	)

	a.storeReport(ctx, run, result)

	if a.auditor != nil {
		a.auditor.Record(model.AuditRecord{
			File:         run.Filename,
			ContractType: result.Classification.ContractType,
			Risk:         result.OverallRisk.String(),
			Timestamp:    time.Now().Format(time.RFC3339),
		})
	}
}

// Run executes the document-to-structured-analysis pipeline over
// extracted text. It never fails: pattern stages cannot error on valid
// strings and the summary provider degrades to canned text.
func (a *Analyzer) Run(ctx context.Context, text string) *model.AnalysisResult {
	doc := analysis.Normalize(text)

	classification := analysis.Classify(doc.Text)
	clauses := analysis.Segment(doc.Text)
	entities := analysis.ExtractEntities(doc.Text)

	tiers := a.scoreClauses(clauses)

	analyzed := make([]model.AnalyzedClause, len(clauses))
	for i, clause := range clauses {
		explanation := a.provider.ExplainClause(ctx, clause.Text)

		var suggestion string
		if tiers[i] != model.RiskLow {
			suggestion = a.provider.SuggestAlternative(ctx, clause.Text)
		}

		analyzed[i] = model.AnalyzedClause{
			Title:       clause.Title,
			Text:        clause.Text,
			Risk:        tiers[i],
			Explanation: explanation,
			Suggestion:  suggestion,
		}
	}

	return &model.AnalysisResult{
		Language:       doc.Language,
		Classification: classification,
		Entities:       entities,
		Clauses:        analyzed,
		Summary:        a.provider.Summarize(ctx, doc.Text),
		OverallRisk:    analysis.AggregateRisk(tiers),
	}
}

// scoreClauses fans clause scoring out over a small worker pool.
// Scoring is a pure function per clause, so workers write into their
// own index and document order is preserved in the result.
func (a *Analyzer) scoreClauses(clauses []model.Clause) []model.RiskTier {
	tiers := make([]model.RiskTier, len(clauses))

	workers := a.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > len(clauses) {
			workers = len(clauses)
		}
		if workers < 1 {
			workers = 1
		}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				tiers[i] = a.lexicon.Tier(clauses[i].Text)
			}
		}()
	}

	for i := range clauses {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return tiers
}

// storeReport renders the PDF report and uploads it. Failures are
// logged and swallowed; the analysis result has already been stored.
func (a *Analyzer) storeReport(ctx context.Context, run *model.Analysis, result *model.AnalysisResult) {
	if a.renderer == nil || a.minio == nil {
		return
	}

	report, err := a.renderer.Render(run.Filename, result)
	if err != nil {
		logger.Warn(ctx, "report rendering failed", "error", err)
		return
	}

	objectName := run.Tenant + "/" + run.ID + "/report.pdf"
	if err := a.minio.UploadReport(ctx, objectName, report); err != nil {
		logger.Warn(ctx, "report upload failed", "error", err)
		return
	}

	a.store.SetReportObject(run.ID, objectName)
	logger.Info(ctx, "report stored", "object", objectName)
}
