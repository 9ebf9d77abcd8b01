package keywords

import (
	"github.com/mindy15963/GwangjuARDonMap/jobs"
)

const JobTypeAnalysis = "keyword-analysis"

// AnalysisArgs is the recorded parameterization of one analysis job.
type AnalysisArgs struct {
	DatasetPath string      `json:"datasetPath"`
	Ranking     RankingOpts `json:"ranking"`
}

// AnalysisJob collects information about a keyword analysis run.
type AnalysisJob struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Start    jobs.JSONTime `json:"start"`
	Update   jobs.JSONTime `json:"update"`
	Finished bool          `json:"finished"`
	Error    error         `json:"error,omitempty"`
	Args     AnalysisArgs  `json:"args"`
	Result   *Summary      `json:"result"`
}

func (j AnalysisJob) GetID() string {
	return j.ID
}

func (j AnalysisJob) GetType() string {
	return j.Type
}

func (j AnalysisJob) GetStartDT() jobs.JSONTime {
	return j.Start
}

func (j AnalysisJob) IsFinished() bool {
	return j.Finished
}

func (j AnalysisJob) AsFinished() jobs.GeneralJobInfo {
	j.Update = jobs.CurrentDatetime()
	j.Finished = true
	return j
}

func (j AnalysisJob) GetError() error {
	return j.Error
}

func (j AnalysisJob) WithError(err error) jobs.GeneralJobInfo {
	j.Update = jobs.CurrentDatetime()
	j.Finished = true
	j.Error = err
	return j
}

func (j AnalysisJob) FullInfo() any {
	return struct {
		ID       string        `json:"id"`
		Type     string        `json:"type"`
		Start    jobs.JSONTime `json:"start"`
		Update   jobs.JSONTime `json:"update"`
		Finished bool          `json:"finished"`
		Error    string        `json:"error,omitempty"`
		OK       bool          `json:"ok"`
		Args     AnalysisArgs  `json:"args"`
		Result   *Summary      `json:"result"`
	}{
		ID:       j.ID,
		Type:     j.Type,
		Start:    j.Start,
		Update:   j.Update,
		Finished: j.Finished,
		Error:    jobs.ErrorToString(j.Error),
		OK:       j.Error == nil,
		Args:     j.Args,
		Result:   j.Result,
	}
}
