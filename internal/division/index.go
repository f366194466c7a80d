package division

import model "github.com/MassBabyGeek/RankPro-backend/internal/models"

type key struct{ major, sub int }

// Index est une table (major, sub) -> division construite une fois par snapshot.
// Même résultat que FindDivision, doublons compris.
type Index struct {
	byKey map[key]model.Division
}

func NewIndex(divisions []model.Division) *Index {
	idx := &Index{byKey: make(map[key]model.Division, len(divisions))}
	for _, d := range divisions {
		k := key{d.MajorIndex, d.SubIndex}
		if _, exists := idx.byKey[k]; exists {
			continue
		}
		idx.byKey[k] = d
	}
	return idx
}

func (i *Index) Find(majorIndex, subIndex int) (model.Division, bool) {
	d, ok := i.byKey[key{majorIndex, subIndex}]
	return d, ok
}

// Place combine la recherche de division et la jauge pour une entrée de ligue.
// Une division introuvable n'est pas une erreur : Division reste nil.
func (i *Index) Place(entry model.LeaderboardEntry) (model.Placement, error) {
	p := model.Placement{Entry: entry}

	d, ok := i.Find(entry.MajorDivisionIndex, entry.SubDivisionIndex)
	if !ok {
		return p, nil
	}
	p.Division = &d

	arc, err := GaugeArcLength(entry.Score, d)
	if err != nil {
		return p, err
	}
	p.GaugeArcLength = &arc
	return p, nil
}
