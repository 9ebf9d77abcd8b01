package keywords

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mindy15963/GwangjuARDonMap/dataset"
	"github.com/mindy15963/GwangjuARDonMap/db/mysql"
	"github.com/mindy15963/GwangjuARDonMap/geocode"
	"github.com/mindy15963/GwangjuARDonMap/jobs"
)

// ActionHandler contains the keyword-related HTTP REST actions.
// It keeps the result of the latest analysis run in memory; with a
// configured database the latest archived payload additionally
// survives restarts.
type ActionHandler struct {
	dsConf     *dataset.Conf
	geoClient  *geocode.Client
	tokenizer  Tokenizer
	opts       RankingOpts
	jobActions *jobs.Actions
	kwDB       *mysql.Adapter

	lock        sync.RWMutex
	lastResult  *AnalysisResult
	lastRecords []dataset.Record
}

func NewActionHandler(
	dsConf *dataset.Conf,
	geoClient *geocode.Client,
	tokenizer Tokenizer,
	opts RankingOpts,
	jobActions *jobs.Actions,
	kwDB *mysql.Adapter,
) *ActionHandler {
	return &ActionHandler{
		dsConf:     dsConf,
		geoClient:  geoClient,
		tokenizer:  tokenizer,
		opts:       opts,
		jobActions: jobActions,
		kwDB:       kwDB,
	}
}

// Snapshot exposes the enriched records and keyword payload of the
// latest finished analysis (for the map renderer).
func (h *ActionHandler) Snapshot() ([]dataset.Record, Payload, bool) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	if h.lastResult == nil {
		return nil, nil, false
	}
	return h.lastRecords, h.lastResult.Payload, true
}

func (h *ActionHandler) runSync(ctx context.Context, analysisID string, opts RankingOpts) (*AnalysisResult, error) {
	records, _, err := geocode.EnrichRecords(ctx, h.dsConf, h.geoClient)
	if err != nil {
		return nil, err
	}
	result, err := Analyze(records, h.tokenizer, opts)
	if err != nil {
		return nil, err
	}
	h.lock.Lock()
	h.lastResult = result
	h.lastRecords = records
	h.lock.Unlock()
	if h.kwDB != nil {
		if err := StoreKeywords(ctx, h.kwDB.DB(), analysisID, result.Ranked); err != nil {
			log.Error().Err(err).Msg("failed to archive analysis result")
		}
	}
	return result, nil
}

// StartAnalysis runs the full pipeline (dataset load, geocoding with
// cache, aggregation, ranking) as a background job and responds with
// the job info. Only one analysis may run at a time. The configured
// ranking parameters can be overridden per run via URL arguments.
func (h *ActionHandler) StartAnalysis(ctx *gin.Context) {
	if h.jobActions.AnyRunningOfType(JobTypeAnalysis) {
		uniresp.RespondWithErrorJSON(
			ctx, errors.New("an analysis is already running"), http.StatusConflict)
		return
	}
	opts := h.opts
	topN, ok := unireq.GetURLIntArgOrFail(ctx, "topN", opts.TopN)
	if !ok {
		return
	}
	opts.TopN = topN
	minCount, ok := unireq.GetURLIntArgOrFail(ctx, "minCount", opts.MinCount)
	if !ok {
		return
	}
	opts.MinCount = minCount
	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	jobInfo := AnalysisJob{
		ID:    jobID.String(),
		Type:  JobTypeAnalysis,
		Start: jobs.CurrentDatetime(),
		Args: AnalysisArgs{
			DatasetPath: h.dsConf.Path,
			Ranking:     opts,
		},
	}
	fn := func(updates chan<- jobs.GeneralJobInfo) {
		defer close(updates)
		result, err := h.runSync(context.Background(), jobInfo.ID, opts)
		if err != nil {
			updates <- jobInfo.WithError(err)
			return
		}
		jobInfo.Result = &result.Summary
		updates <- jobInfo.AsFinished()
	}
	h.jobActions.EnqueueJob(fn, jobInfo)
	uniresp.WriteJSONResponse(ctx.Writer, jobInfo.FullInfo())
}

// JobInfo reports the status of an analysis job.
func (h *ActionHandler) JobInfo(ctx *gin.Context) {
	info, err := h.jobActions.GetJob(ctx.Param("jobId"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, info.FullInfo())
}

// DistrictKeywords serves the keyword payload of the latest analysis.
// Without an in-memory result it falls back to the database archive
// (if configured).
func (h *ActionHandler) DistrictKeywords(ctx *gin.Context) {
	h.lock.RLock()
	result := h.lastResult
	h.lock.RUnlock()
	if result != nil {
		uniresp.WriteJSONResponse(ctx.Writer, result.Payload)
		return
	}
	if h.kwDB != nil {
		payload, err := LoadLatestKeywords(ctx.Request.Context(), h.kwDB.DB())
		if err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
			return
		}
		if len(payload) > 0 {
			uniresp.WriteJSONResponse(ctx.Writer, payload)
			return
		}
	}
	uniresp.RespondWithErrorJSON(
		ctx, errors.New("no analysis available yet"), http.StatusNotFound)
}

// Districts reports the per-district summary of the latest analysis.
func (h *ActionHandler) Districts(ctx *gin.Context) {
	h.lock.RLock()
	result := h.lastResult
	h.lock.RUnlock()
	if result == nil {
		uniresp.RespondWithErrorJSON(
			ctx, errors.New("no analysis available yet"), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result.Summary)
}
