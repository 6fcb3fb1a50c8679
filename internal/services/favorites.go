package services

// FavoriteAction is the human-facing signal for a favorites toggle.
type FavoriteAction string

const (
	FavoriteAdded   FavoriteAction = "added"
	FavoriteRemoved FavoriteAction = "removed"
)

// ToggleFavorite flips membership of movieID in the visitor's favorite set
// and reports which way it went. The input set is not mutated; favorites
// live in the caller's session, never in the database.
func ToggleFavorite(favorites map[uint]struct{}, movieID uint) (map[uint]struct{}, FavoriteAction) {
	updated := make(map[uint]struct{}, len(favorites)+1)
	for id := range favorites {
		updated[id] = struct{}{}
	}

	if _, ok := updated[movieID]; ok {
		delete(updated, movieID)
		return updated, FavoriteRemoved
	}
	updated[movieID] = struct{}{}
	return updated, FavoriteAdded
}
