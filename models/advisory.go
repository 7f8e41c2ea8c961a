package models

// IrrigationRecommendation is derived per (crop, weather) invocation, never stored.
type IrrigationRecommendation struct {
	Action           string  `json:"action"` // IRRIGATE, SKIP, DELAY
	DurationMinutes  int     `json:"durationMinutes"`
	Reason           string  `json:"reason"`
	ETc              float64 `json:"etc"`
	WaterDeficit     float64 `json:"waterDeficit"`
	MoistureEstimate int     `json:"moistureEstimate"` // percent, display only
}

type RiskAssessment struct {
	Disease   string `json:"disease"`
	Score     int    `json:"score"` // 0-100
	Tier      string `json:"tier"`  // High, Moderate, Low
	Treatment string `json:"treatment"`
}

type StageResult struct {
	DAP             int    `json:"dap"`
	StageName       string `json:"stageName"`
	Description     string `json:"description"`
	NextStageName   string `json:"nextStageName,omitempty"`
	ProgressPercent int    `json:"progressPercent"`
}

type MarketAdvice struct {
	Price          float64 `json:"price"`
	Trend          string  `json:"trend"` // UP, DOWN
	Recommendation string  `json:"recommendation"`
}

// Advisory is the assembled per-crop payload served to the app.
type Advisory struct {
	CropID      string                   `json:"cropId"`
	CropType    string                   `json:"cropType"`
	Stage       StageResult              `json:"stage"`
	WeeklyTasks []string                 `json:"weeklyTasks"`
	Irrigation  IrrigationRecommendation `json:"irrigation"`
	Risks       []RiskAssessment         `json:"risks"`
	Market      MarketAdvice             `json:"market"`
}

// HarvestScenario models one sell-now/hold trade-off option.
type HarvestScenario struct {
	Label         string  `json:"label"`
	WaitDays      int     `json:"waitDays"`
	ExpectedPrice float64 `json:"expectedPrice"` // Rs per quintal
	GrossRevenue  float64 `json:"grossRevenue"`
	StorageCost   float64 `json:"storageCost"`
	SpoilageLoss  float64 `json:"spoilageLoss"`
	NetRevenue    float64 `json:"netRevenue"`
	Note          string  `json:"note"`
}
