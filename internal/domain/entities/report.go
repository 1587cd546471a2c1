package entities

// TechnicalReport is the formal inspection document generated from a quote and
// its supporting photos. It is ephemeral: held in memory per viewing session,
// rendered or exported, never persisted.
//
// PhotoIndex values reference the zero-based position in the image array the
// report was generated against. Out-of-range indices are the renderer's
// responsibility to guard.
type TechnicalReport struct {
	ClientInfo      ReportClientInfo     `json:"client_info"`
	Objective       string               `json:"objective"`
	Methodology     []string             `json:"methodology"`
	Development     []ReportSection      `json:"development"`
	PhotoAnalyses   []PhotoAnalysis      `json:"photo_analyses"`
	Conclusion      ReportConclusion     `json:"conclusion"`
	Recommendations ReportRecommendation `json:"recommendations"`
}

type ReportClientInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Date    string `json:"date"`
}

type ReportSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PhotoAnalysis struct {
	PhotoIndex  int    `json:"photo_index"`
	Legend      string `json:"legend"`
	Description string `json:"description"`
}

type ReportConclusion struct {
	Diagnosis      string `json:"diagnosis"`
	TechnicalProof string `json:"technical_proof"`
	Consequences   string `json:"consequences"`
	ActiveLeak     bool   `json:"active_leak"`
}

type ReportRecommendation struct {
	RepairType    string   `json:"repair_type"`
	Materials     []string `json:"materials"`
	EstimatedTime string   `json:"estimated_time"`
	Notes         string   `json:"notes"`
}
