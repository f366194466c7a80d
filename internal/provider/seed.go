package provider

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/MassBabyGeek/RankPro-backend/internal/division"
	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/rating"
)

var (
	majorNames = []string{"bronze", "silver", "gold", "diamond", "master"}
	subNames   = []string{"I", "II", "III"}
	firstNames = []string{"Alex", "Aaron", "Alice", "Amy", "Zack", "Zara", "Zoe", "Rahul", "Priya",
		"John", "Jane", "Mike", "Emma", "David", "Lisa", "Tom", "Sarah"}
	lastNames = []string{"Sharma", "Kumar", "Patel", "Smith", "Johnson", "Brown", "Garcia", "Davis"}
)

// SeedDemo remplit m avec une saison et players joueurs aléatoires
func SeedDemo(m *Memory, players, minGamesPlayed int, r *rand.Rand) {
	divisions := make([]model.Division, 0, len(majorNames)*len(subNames))
	for mi, major := range majorNames {
		for si, sub := range subNames {
			divisions = append(divisions, model.Division{
				MajorIndex:   mi + 1,
				SubIndex:     si + 1,
				MajorName:    major,
				SubName:      sub,
				HighestScore: 10 + 5*si,
			})
		}
	}
	m.SetDivisions(divisions)

	global := make([]model.LeaderboardEntry, 0, players)
	ladder := make([]model.LeaderboardEntry, 0, players)
	league := make([]model.LeaderboardEntry, 0, players)
	counts := make(map[int]int)

	for i := 1; i <= players; i++ {
		username := fmt.Sprintf("%s_%s%d",
			strings.ToLower(firstNames[r.Intn(len(firstNames))]),
			strings.ToLower(lastNames[r.Intn(len(lastNames))]), i)

		for _, rt := range []model.RatingType{model.RatingTypeGlobal, model.RatingTypeLadder1v1} {
			snap := model.RatingSnapshot{Mean: 100 + r.Float64()*2400, Deviation: 30 + r.Float64()*320}
			games := r.Intn(300)
			m.SetPlayerRating(i, rt, snap)

			e := model.LeaderboardEntry{PlayerID: i, Username: username, GamesPlayed: games, Rating: rating.Project(snap)}
			if rt == model.RatingTypeGlobal {
				global = append(global, e)
				continue
			}
			ladder = append(ladder, e)
			if games >= minGamesPlayed {
				counts[rating.RoundRatingToNextLowest100(float64(e.Rating))]++
			}

			major := 1 + r.Intn(len(majorNames))
			sub := 1 + r.Intn(len(subNames))
			d, _ := division.FindDivision(divisions, major, sub)
			e.Score = r.Intn(d.HighestScore + 1)
			e.MajorDivisionIndex = major
			e.SubDivisionIndex = sub
			league = append(league, e)
		}
	}

	m.SetEntries(model.RatingTypeGlobal, rankByRating(global))
	m.SetEntries(model.RatingTypeLadder1v1, rankByRating(ladder))

	sortByScore(league)
	for i := range league {
		league[i].Rank = i + 1
	}
	m.SetLeagueEntries(league)

	stats := make([]model.RatingStat, 0, len(counts))
	for bucket, n := range counts {
		stats = append(stats, model.RatingStat{Rating: bucket, CountWithEnoughGamesPlayed: n})
	}
	m.SetLadder1v1Stats(stats)
}

func rankByRating(entries []model.LeaderboardEntry) []model.LeaderboardEntry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rating == entries[j].Rating {
			return entries[i].PlayerID < entries[j].PlayerID
		}
		return entries[i].Rating > entries[j].Rating
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
