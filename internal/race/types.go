package race

import "fmt"

type RaceType int

const (
	Sprint RaceType = iota
	Mile
	Medium
	Long
)

func (r RaceType) String() string {
	switch r {
	case Sprint:
		return "Sprint"
	case Mile:
		return "Mile"
	case Medium:
		return "Medium"
	case Long:
		return "Long"
	}
	return fmt.Sprintf("RaceType(%d)", int(r))
}

func ParseRaceType(s string) (RaceType, error) {
	switch s {
	case "Sprint":
		return Sprint, nil
	case "Mile":
		return Mile, nil
	case "Medium":
		return Medium, nil
	case "Long":
		return Long, nil
	}
	return Medium, fmt.Errorf("unknown race type %q", s)
}

type Surface int

const (
	Turf Surface = iota
	Dirt
)

func (s Surface) String() string {
	if s == Dirt {
		return "Dirt"
	}
	return "Turf"
}

func ParseSurface(s string) (Surface, error) {
	switch s {
	case "Turf":
		return Turf, nil
	case "Dirt":
		return Dirt, nil
	}
	return Turf, fmt.Errorf("unknown surface %q", s)
}

type TrackCondition int

const (
	Firm TrackCondition = iota
	Good
	Soft
	Heavy
)

func (c TrackCondition) String() string {
	switch c {
	case Firm:
		return "Firm"
	case Good:
		return "Good"
	case Soft:
		return "Soft"
	case Heavy:
		return "Heavy"
	}
	return fmt.Sprintf("TrackCondition(%d)", int(c))
}

func ParseTrackCondition(s string) (TrackCondition, error) {
	switch s {
	case "Firm":
		return Firm, nil
	case "Good":
		return Good, nil
	case "Soft":
		return Soft, nil
	case "Heavy":
		return Heavy, nil
	}
	return Good, fmt.Errorf("unknown track condition %q", s)
}

type Style int

const (
	FrontRunner Style = iota
	PaceChaser
	LateSurger
	EndCloser
)

func (s Style) String() string {
	switch s {
	case FrontRunner:
		return "FrontRunner"
	case PaceChaser:
		return "PaceChaser"
	case LateSurger:
		return "LateSurger"
	case EndCloser:
		return "EndCloser"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

func ParseStyle(s string) (Style, error) {
	switch s {
	case "FR", "FrontRunner":
		return FrontRunner, nil
	case "PC", "PaceChaser":
		return PaceChaser, nil
	case "LS", "LateSurger":
		return LateSurger, nil
	case "EC", "EndCloser":
		return EndCloser, nil
	}
	return PaceChaser, fmt.Errorf("unknown running style %q", s)
}

// Grade is an aptitude letter, S best through G worst.
type Grade int

const (
	GradeS Grade = iota
	GradeA
	GradeB
	GradeC
	GradeD
	GradeE
	GradeF
	GradeG
)

func (g Grade) String() string {
	if g < GradeS || g > GradeG {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return string("SABCDEFG"[g])
}

func ParseGrade(s string) (Grade, error) {
	switch s {
	case "S":
		return GradeS, nil
	case "A":
		return GradeA, nil
	case "B":
		return GradeB, nil
	case "C":
		return GradeC, nil
	case "D":
		return GradeD, nil
	case "E":
		return GradeE, nil
	case "F":
		return GradeF, nil
	case "G":
		return GradeG, nil
	}
	return GradeB, fmt.Errorf("unknown aptitude grade %q", s)
}

type Phase int

const (
	PhaseStart Phase = iota
	PhaseMid
	PhaseFinal
	PhaseSprint
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhaseMid:
		return "Mid"
	case PhaseFinal:
		return "Final"
	case PhaseSprint:
		return "Sprint"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

type Stats struct {
	Speed   int
	Stamina int
	Power   int
	Guts    int
	Wit     int
}

// Profile is the immutable description of one competitor. The engine
// assigns stable integer ids in registration order at setup.
type Profile struct {
	Name        string
	Stats       Stats
	Style       Style
	DistanceApt [4]Grade // indexed by RaceType
	SurfaceApt  [2]Grade // indexed by Surface
}

type RaceConfig struct {
	Distance float64
	Type     RaceType
	Surface  Surface
	// Condition is carried through to reports and storage; the tick
	// model does not read it.
	Condition TrackCondition
}
