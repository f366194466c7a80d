package model

// RatingType identifie un classement (global ou ladder 1v1)
type RatingType string

const (
	RatingTypeGlobal    RatingType = "global"
	RatingTypeLadder1v1 RatingType = "ladder_1v1"
)

// ParseRatingType valide un type de classement reçu dans une URL
func ParseRatingType(s string) (RatingType, bool) {
	switch RatingType(s) {
	case RatingTypeGlobal, RatingTypeLadder1v1:
		return RatingType(s), true
	default:
		return "", false
	}
}

// RatingSnapshot est la distribution (moyenne, écart-type) d'un joueur
type RatingSnapshot struct {
	Mean      float64 `json:"mean"`
	Deviation float64 `json:"deviation"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"` // 1-based, contigu
	PlayerID    int    `json:"playerId"`
	Username    string `json:"username"`
	GamesPlayed int    `json:"gamesPlayed"`
	Rating      int    `json:"rating"`

	// Champs de ligue (0 quand le joueur n'est pas classé)
	Score              int `json:"score"`
	MajorDivisionIndex int `json:"majorDivisionIndex"`
	SubDivisionIndex   int `json:"subDivisionIndex"`
}

type Division struct {
	MajorIndex   int    `json:"majorIndex"`
	SubIndex     int    `json:"subIndex"`
	MajorName    string `json:"majorName"`
	SubName      string `json:"subName"`
	HighestScore int    `json:"highestScore"`
}

// RatingStat : nombre de joueurs ayant assez de parties à un rating donné
type RatingStat struct {
	Rating                     int `json:"rating"`
	CountWithEnoughGamesPlayed int `json:"countWithEnoughGamesPlayed"`
}

type RatingBucket struct {
	Rating         int  `json:"rating"`
	Count          int  `json:"count"`
	IsViewerBucket bool `json:"isViewerBucket"`
}

// Placement décrit la position d'un joueur dans sa division
type Placement struct {
	Entry          LeaderboardEntry `json:"entry"`
	Division       *Division        `json:"division,omitempty"`
	GaugeArcLength *float64         `json:"gaugeArcLength,omitempty"`
}

// ProjectedRating regroupe les différentes projections d'un rating
type ProjectedRating struct {
	Snapshot        RatingSnapshot `json:"snapshot"`
	Conservative    int            `json:"conservative"`
	Rounded         int            `json:"rounded"`
	HistogramBucket int            `json:"histogramBucket"`
}
