// Package session keeps the visitor's favorite movie IDs in the Fiber
// session store. Favorites never touch the database; they live and die with
// the visitor's session cookie.
package session

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/middleware/session"
)

const favoritesKey = "favorite_movie_ids"

// Favorites reads the visitor's favorite movie ID set from the session.
// A missing or garbled value reads as an empty set.
func Favorites(sess *session.Session) map[uint]struct{} {
	raw, _ := sess.Get(favoritesKey).(string)
	return parseFavorites(raw)
}

// SaveFavorites writes the favorite set back to the session. The caller
// still has to Save() the session.
func SaveFavorites(sess *session.Session, favorites map[uint]struct{}) {
	if len(favorites) == 0 {
		sess.Delete(favoritesKey)
		return
	}
	sess.Set(favoritesKey, encodeFavorites(favorites))
}

func parseFavorites(raw string) map[uint]struct{} {
	favorites := make(map[uint]struct{})
	if raw == "" {
		return favorites
	}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		favorites[uint(id)] = struct{}{}
	}
	return favorites
}

func encodeFavorites(favorites map[uint]struct{}) string {
	ids := make([]uint, 0, len(favorites))
	for id := range favorites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}
