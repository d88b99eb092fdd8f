package race

// SpeedBand holds the phase target speeds for one race type, in m/s.
type SpeedBand struct {
	Base   float64
	Top    float64
	Sprint float64
}

// PhaseBounds are the progress fractions at which Mid, Final and
// Sprint begin. Start always begins at 0.
type PhaseBounds struct {
	Mid    float64
	Final  float64
	Sprint float64
}

type StatWeights struct {
	Speed   float64
	Stamina float64
	Power   float64
	Guts    float64
	Wit     float64
}

// StyleAdjust is the signed speed adjustment a running style applies
// per phase. Final covers both the Final and Sprint phases.
type StyleAdjust struct {
	Start float64
	Mid   float64
	Final float64
}

// Band is a min-max normalization target: coefficients are scaled
// into [Min, Min+Width].
type Band struct {
	Min   float64
	Width float64
}

type IncidentKindSpec struct {
	Kind      string
	Duration  int
	SpeedMult float64
}

type IncidentParams struct {
	BaseChance      float64
	WitScale        float64
	FrontRunnerMult float64
	EndCloserMult   float64
	WarmupTicks     int
	Gate            float64
	MomentumPenalty float64
	MomentumRebound float64

	// Kind pools by progress bucket.
	EarlyCutoff float64
	MidCutoff   float64
	LateCutoff  float64
	EarlyKinds  []IncidentKindSpec
	MidKinds    []IncidentKindSpec
	LateKinds   []IncidentKindSpec
	FinalKinds  []IncidentKindSpec
}

type DNFParams struct {
	WindowLo       float64
	WindowHi       float64
	BaseChance     float64
	StatCut        int
	StatPenalty    float64
	AptPenalty     float64
	LowStatCut     int
	LowStatPenalty float64
	Gate           float64
	Cap            float64
}

type DuelParams struct {
	WindowMin         float64 // remaining meters
	WindowMax         float64
	EndAt             float64
	Proximity         float64
	GutsChanceCap     float64
	GutsScale         float64
	MidPackLo         float64
	MidPackHi         float64
	MidPackFactor     float64
	BaseFactor        float64
	StaminaBoostCap   float64
	StaminaBoostScale float64
	GutsTiers         [3]int     // momentum boost thresholds, descending
	TierBoosts        [3]float64 // momentum added above the matching tier
	WeakBoost         float64    // speed factor for low-guts participants while the duel runs
}

// Params collects every tuning constant of the engine. All race-type
// indexed tables use the RaceType constants as index. Defaults come
// from the latest tuning pass; callers may override any field before
// constructing an engine.
type Params struct {
	Speeds       [4]SpeedBand
	FinalPremium float64

	Weights      [4]StatWeights
	PriorityMult [5]float64
	AptMult      [4][8]float64 // race type x grade
	NormBand     [4]Band

	Bounds [4]PhaseBounds

	StyleAdjust [4][4]StyleAdjust // race type x style

	// Fatigue accrual.
	FatigueRate         [4][4]float64 // race type x phase
	FatigueStaminaScale float64
	FatigueDampStrength float64
	FatigueDampFloor    float64
	FatiguePenaltyK     float64
	FatiguePenaltyCap   float64

	// Stamina depletion.
	DrainBase            float64
	DrainPhaseMult       [4]float64
	DrainFatigueFeedback float64
	DrainGutsScale       float64
	DrainGutsStrength    float64
	DrainGutsFloor       float64
	StaminaFloor         float64

	// Stamina speed response.
	RatioTiers          [4]float64
	RatioMults          [5]float64
	EffectiveTiers      [4]float64
	EffectiveMults      [4]float64
	GutsEfficiencyScale float64

	Jitter         float64
	SpeedFloorFrac float64

	// Momentum nudges from rank changes.
	MomentumGain  float64
	MomentumCeil  float64
	MomentumLoss  float64
	MomentumFloor float64

	Incident IncidentParams
	DNF      DNFParams
	Duel     DuelParams
}

func DefaultParams() Params {
	return Params{
		Speeds: [4]SpeedBand{
			Sprint: {Base: 16.5, Top: 17.5, Sprint: 18.0},
			Mile:   {Base: 16.2, Top: 17.2, Sprint: 17.7},
			Medium: {Base: 16.0, Top: 17.0, Sprint: 17.5},
			Long:   {Base: 15.8, Top: 16.8, Sprint: 17.3},
		},
		FinalPremium: 1.02,

		Weights: [4]StatWeights{
			Sprint: {Speed: 0.45, Stamina: 0.15, Power: 0.20, Guts: 0.12, Wit: 0.08},
			Mile:   {Speed: 0.35, Stamina: 0.25, Power: 0.18, Guts: 0.14, Wit: 0.08},
			Medium: {Speed: 0.30, Stamina: 0.35, Power: 0.15, Guts: 0.12, Wit: 0.08},
			Long:   {Speed: 0.25, Stamina: 0.40, Power: 0.15, Guts: 0.12, Wit: 0.08},
		},
		PriorityMult: [5]float64{1.20, 1.15, 1.10, 1.05, 1.00},
		AptMult: [4][8]float64{
			Sprint: {1.12, 1.06, 1.00, 0.94, 0.88, 0.82, 0.76, 0.70},
			Mile:   {1.10, 1.05, 1.00, 0.95, 0.90, 0.85, 0.80, 0.75},
			Medium: {1.08, 1.04, 1.00, 0.96, 0.92, 0.88, 0.84, 0.80},
			Long:   {1.15, 1.08, 1.00, 0.92, 0.85, 0.78, 0.72, 0.65},
		},
		NormBand: [4]Band{
			Sprint: {Min: 0.82, Width: 0.30},
			Mile:   {Min: 0.80, Width: 0.33},
			Medium: {Min: 0.78, Width: 0.36},
			Long:   {Min: 0.76, Width: 0.40},
		},

		Bounds: [4]PhaseBounds{
			Sprint: {Mid: 0.20, Final: 0.70, Sprint: 0.90},
			Mile:   {Mid: 0.15, Final: 0.60, Sprint: 0.85},
			Medium: {Mid: 0.10, Final: 0.50, Sprint: 0.80},
			Long:   {Mid: 0.05, Final: 0.40, Sprint: 0.70},
		},

		StyleAdjust: [4][4]StyleAdjust{
			Sprint: {
				FrontRunner: {Start: 0.20, Mid: 0.10, Final: 0.05},
				PaceChaser:  {Start: 0.08, Mid: 0.12, Final: 0.08},
				LateSurger:  {Start: -0.05, Mid: 0.08, Final: 0.10},
				EndCloser:   {Start: -0.10, Mid: -0.05, Final: 0.15},
			},
			Mile: {
				FrontRunner: {Start: 0.15, Mid: 0.08, Final: -0.05},
				PaceChaser:  {Start: 0.06, Mid: 0.10, Final: 0.06},
				LateSurger:  {Start: -0.06, Mid: 0.06, Final: 0.12},
				EndCloser:   {Start: -0.12, Mid: -0.06, Final: 0.18},
			},
			Medium: {
				FrontRunner: {Start: 0.12, Mid: 0.06, Final: -0.08},
				PaceChaser:  {Start: 0.04, Mid: 0.08, Final: 0.05},
				LateSurger:  {Start: -0.07, Mid: 0.05, Final: 0.14},
				EndCloser:   {Start: -0.14, Mid: -0.07, Final: 0.20},
			},
			Long: {
				FrontRunner: {Start: 0.10, Mid: -0.05, Final: -0.15},
				PaceChaser:  {Start: 0.03, Mid: 0.06, Final: 0.04},
				LateSurger:  {Start: -0.08, Mid: 0.04, Final: 0.15},
				EndCloser:   {Start: -0.15, Mid: -0.08, Final: 0.25},
			},
		},

		FatigueRate: [4][4]float64{
			Sprint: {0.0015, 0.002, 0.003, 0.004},
			Mile:   {0.002, 0.0025, 0.004, 0.005},
			Medium: {0.0025, 0.003, 0.004, 0.006},
			Long:   {0.003, 0.004, 0.005, 0.007},
		},
		FatigueStaminaScale: 500.0,
		FatigueDampStrength: 0.5,
		FatigueDampFloor:    0.3,
		FatiguePenaltyK:     0.04,
		FatiguePenaltyCap:   0.15,

		DrainBase:            0.03,
		DrainPhaseMult:       [4]float64{0.6, 0.8, 1.0, 1.2},
		DrainFatigueFeedback: 0.08,
		DrainGutsScale:       600.0,
		DrainGutsStrength:    0.6,
		DrainGutsFloor:       0.4,
		StaminaFloor:         5.0,

		RatioTiers:          [4]float64{0.8, 0.6, 0.4, 0.2},
		RatioMults:          [5]float64{1.02, 1.00, 0.98, 0.95, 0.90},
		EffectiveTiers:      [4]float64{0.1, 0.3, 0.5, 0.7},
		EffectiveMults:      [4]float64{0.90, 0.94, 0.97, 0.99},
		GutsEfficiencyScale: 1000.0,

		Jitter:         0.02,
		SpeedFloorFrac: 0.85,

		MomentumGain:  0.03,
		MomentumCeil:  1.06,
		MomentumLoss:  0.02,
		MomentumFloor: 0.94,

		Incident: IncidentParams{
			BaseChance:      0.0005,
			WitScale:        200000.0,
			FrontRunnerMult: 1.1,
			EndCloserMult:   0.9,
			WarmupTicks:     20,
			Gate:            0.25,
			MomentumPenalty: 0.92,
			MomentumRebound: 1.01,
			EarlyCutoff:     0.1,
			MidCutoff:       0.4,
			LateCutoff:      0.7,
			EarlyKinds: []IncidentKindSpec{
				{Kind: "slow_start", Duration: 1, SpeedMult: 0.95},
			},
			MidKinds: []IncidentKindSpec{
				{Kind: "stumble", Duration: 1, SpeedMult: 0.60},
				{Kind: "crowded", Duration: 1, SpeedMult: 0.75},
				{Kind: "blocked", Duration: 1, SpeedMult: 0.70},
			},
			LateKinds: []IncidentKindSpec{
				{Kind: "stamina_drain", Duration: 2, SpeedMult: 0.85},
				{Kind: "position_loss", Duration: 1, SpeedMult: 0.88},
			},
			FinalKinds: []IncidentKindSpec{
				{Kind: "final_struggle", Duration: 1, SpeedMult: 0.80},
				{Kind: "exhaustion", Duration: 2, SpeedMult: 0.72},
			},
		},

		DNF: DNFParams{
			WindowLo:       0.4,
			WindowHi:       0.85,
			BaseChance:     0.00001,
			StatCut:        100,
			StatPenalty:    0.000001,
			AptPenalty:     0.001,
			LowStatCut:     80,
			LowStatPenalty: 0.002,
			Gate:           0.05,
			Cap:            0.005,
		},

		Duel: DuelParams{
			WindowMin:         400.0,
			WindowMax:         1200.0,
			EndAt:             100.0,
			Proximity:         5.0,
			GutsChanceCap:     0.7,
			GutsScale:         200.0,
			MidPackLo:         0.3,
			MidPackHi:         0.7,
			MidPackFactor:     1.5,
			BaseFactor:        0.1,
			StaminaBoostCap:   20.0,
			StaminaBoostScale: 10.0,
			GutsTiers:         [3]int{800, 600, 400},
			TierBoosts:        [3]float64{0.15, 0.10, 0.05},
			WeakBoost:         0.02,
		},
	}
}
