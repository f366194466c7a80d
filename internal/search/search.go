// Package search résout la recherche "au fil de la frappe" dans un classement.
//
// Ordre de résolution pour chaque mise à jour de la requête :
//   - un entier positif N demande un scroll vers la ligne N-1, sans toucher à la sélection ;
//   - sinon le premier pseudo (par rang) qui commence par la requête, sans casse ;
//   - sinon le premier pseudo (par rang) qui contient la requête ;
//   - sinon la sélection est effacée.
package search

import (
	"sort"
	"strconv"
	"strings"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
)

type Action string

const (
	ActionNone           Action = "none"
	ActionScroll         Action = "scroll"
	ActionSelect         Action = "select"
	ActionClearSelection Action = "clear"
)

// NoScroll indique qu'aucun scroll n'est demandé
const NoScroll = -1

type Result struct {
	Query    string                  `json:"query"`
	Action   Action                  `json:"action"`
	ScrollTo int                     `json:"scrollTo"` // index 0-based, NoScroll sinon
	Selected *model.LeaderboardEntry `json:"selected,omitempty"`
}

type nameRef struct {
	lower    string
	position int
}

// Index est construit une fois par snapshot d'entrées (triées par rang croissant)
type Index struct {
	entries []model.LeaderboardEntry
	lower   []string
	byName  []nameRef
}

func NewIndex(entries []model.LeaderboardEntry) *Index {
	idx := &Index{
		entries: entries,
		lower:   make([]string, len(entries)),
		byName:  make([]nameRef, len(entries)),
	}
	for i, e := range entries {
		l := strings.ToLower(e.Username)
		idx.lower[i] = l
		idx.byName[i] = nameRef{lower: l, position: i}
	}
	sort.SliceStable(idx.byName, func(i, j int) bool {
		return idx.byName[i].lower < idx.byName[j].lower
	})
	return idx
}

func (idx *Index) Len() int {
	return len(idx.entries)
}

// PrefixMatch retourne la position du meilleur rang dont le pseudo commence par query
func (idx *Index) PrefixMatch(query string) (int, bool) {
	q := strings.ToLower(query)
	start := sort.Search(len(idx.byName), func(i int) bool {
		return idx.byName[i].lower >= q
	})

	best := -1
	for i := start; i < len(idx.byName); i++ {
		ref := idx.byName[i]
		if !strings.HasPrefix(ref.lower, q) {
			break
		}
		if best == -1 || ref.position < best {
			best = ref.position
		}
	}
	return best, best != -1
}

// SubstringMatch retourne la position du meilleur rang dont le pseudo contient query
func (idx *Index) SubstringMatch(query string) (int, bool) {
	q := strings.ToLower(query)
	for i, l := range idx.lower {
		if strings.Contains(l, q) {
			return i, true
		}
	}
	return -1, false
}

// parseRank reconnaît une requête composée uniquement de chiffres
func parseRank(query string) (n int, numeric bool) {
	if query == "" {
		return 0, false
	}
	for _, c := range query {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(query)
	if err != nil {
		// trop grand : numérique mais hors limites
		return 0, true
	}
	return n, true
}

// Session garde la sélection courante sur un snapshot figé
type Session struct {
	index    *Index
	selected int
}

func NewSession(index *Index) *Session {
	return &Session{index: index, selected: -1}
}

// Selected retourne l'entrée sélectionnée, nil sinon
func (s *Session) Selected() *model.LeaderboardEntry {
	if s.selected < 0 {
		return nil
	}
	e := s.index.entries[s.selected]
	return &e
}

// Update applique une nouvelle valeur de requête
func (s *Session) Update(query string) Result {
	if n, numeric := parseRank(query); numeric {
		res := Result{Query: query, Action: ActionNone, ScrollTo: NoScroll, Selected: s.Selected()}
		if n >= 1 && n <= s.index.Len() {
			res.Action = ActionScroll
			res.ScrollTo = n - 1
		}
		return res
	}

	pos, ok := s.index.PrefixMatch(query)
	if !ok {
		pos, ok = s.index.SubstringMatch(query)
	}
	if !ok {
		s.selected = -1
		return Result{Query: query, Action: ActionClearSelection, ScrollTo: NoScroll}
	}

	s.selected = pos
	return Result{Query: query, Action: ActionSelect, ScrollTo: pos, Selected: s.Selected()}
}

// Resolve exécute une recherche ponctuelle sans état
func Resolve(entries []model.LeaderboardEntry, query string) Result {
	return NewSession(NewIndex(entries)).Update(query)
}
