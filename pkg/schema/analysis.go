package schema

// Analysis is the internal Coordinate Heart System assessment the model is
// asked to produce alongside its user-facing reply. Every field is always
// populated after recovery; see DefaultAnalysis for the canonical defaults.
type Analysis struct {
	PrimaryEmotion   string    `json:"primaryEmotion" jsonschema_description:"Dominant primary emotion(s) identified from the five base emotions"`
	ComplexEmotion   string    `json:"complexEmotion" jsonschema_description:"Dominant complex emotion identified from the CHS mappings, if applicable"`
	Coordinates      []float64 `json:"coordinates" jsonschema_description:"Estimated CHS coordinates as [x, y] (e.g., [0.0, -0.2])"`
	Intensity        float64   `json:"intensity" jsonschema_description:"Overall emotional intensity, distance from the Love origin (0.0-1.0)"`
	Instability      float64   `json:"instability" jsonschema_description:"Emotional instability due to opposing pulls (0.0-1.0)"`
	CollapseRisk     float64   `json:"collapseRisk" jsonschema_description:"Risk of emotional collapse or overwhelm (0.0-1.0)"`
	KeyIndicators    []string  `json:"keyIndicators" jsonschema_description:"Words or phrases from the user that informed the analysis"`
	ResponseStrategy string    `json:"responseStrategy" jsonschema_description:"Chosen response strategy based on the analysis"`
	RiskFactors      []string  `json:"riskFactors" jsonschema_description:"Risk factors requiring special attention"`
}

// AtlasReply is the full model output: the hidden analysis plus the text
// actually shown to the user. Wire keys match the prompt contract.
type AtlasReply struct {
	Analysis           Analysis `json:"internal_chs_analysis" jsonschema_description:"Internal CHS assessment, never shown to the user directly"`
	UserFacingResponse string   `json:"user_facing_response" jsonschema_description:"Empathetic, human-readable response for the user; may contain newlines"`
}

// DefaultAnalysis returns the canonical fully-defaulted analysis. Recovery
// substitutes these values field by field, so a caller can never observe a
// missing or out-of-range field.
func DefaultAnalysis() Analysis {
	return Analysis{
		PrimaryEmotion:   "Unknown",
		ComplexEmotion:   "Unknown",
		Coordinates:      []float64{0.0, 0.0},
		Intensity:        0.0,
		Instability:      0.0,
		CollapseRisk:     0.0,
		KeyIndicators:    []string{},
		ResponseStrategy: "General Support",
		RiskFactors:      []string{},
	}
}

// DefaultReply returns the fully-defaulted reply used when nothing at all can
// be recovered from a model response.
func DefaultReply() AtlasReply {
	return AtlasReply{
		Analysis:           DefaultAnalysis(),
		UserFacingResponse: "",
	}
}
