package benchmark

import "time"

type RunRequest struct {
	Department string `form:"department" binding:"required"`
}

type HistoryRequest struct {
	Department string `form:"department" binding:"required"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ResultResponse struct {
	Variant   string `json:"variant"`
	Label     string `json:"label"`
	Count     int    `json:"count"`
	ElapsedMS int64  `json:"elapsed_ms"`
	FirstName string `json:"first_name,omitempty"`
}

type DivergenceResponse struct {
	Variant  string `json:"variant"`
	Count    int    `json:"count"`
	Expected int    `json:"expected"`
	Note     string `json:"note"`
}

type ReportResponse struct {
	ID          string               `json:"id"`
	Department  string               `json:"department"`
	StartedAt   string               `json:"started_at"`
	Results     []ResultResponse     `json:"results"`
	Divergences []DivergenceResponse `json:"divergences,omitempty"`
}

func mapToReportResponse(report Report) ReportResponse {
	res := ReportResponse{
		ID:         report.ID,
		Department: report.Department,
		StartedAt:  report.StartedAt.UTC().Format(time.RFC3339Nano),
		Results:    make([]ResultResponse, len(report.Results)),
	}
	for i, r := range report.Results {
		res.Results[i] = ResultResponse{
			Variant:   string(r.Variant),
			Label:     r.Variant.Label(),
			Count:     r.Count,
			ElapsedMS: r.Elapsed.Milliseconds(),
			FirstName: r.FirstName,
		}
	}
	for _, d := range report.Divergences {
		res.Divergences = append(res.Divergences, DivergenceResponse{
			Variant:  string(d.Variant),
			Count:    d.Count,
			Expected: d.Expected,
			Note:     d.Note(),
		})
	}
	return res
}

func mapToReportListResponse(reports []Report) []ReportResponse {
	res := make([]ReportResponse, len(reports))
	for i, r := range reports {
		res[i] = mapToReportResponse(r)
	}
	return res
}
