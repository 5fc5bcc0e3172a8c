package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atlax/atlax/internal/avatar"
)

// seedItem is one default catalog row. Thumbnail is optional; items without
// one render as a placeholder cube in the client.
type seedItem struct {
	id        string
	name      string
	modelURL  string
	thumbnail string
	category  avatar.Category
}

var defaultCatalog = []seedItem{
	{"avatar_male", "Male Avatar", "/models/avatar_male.glb", "/thumbs/avatar_male.png", avatar.CategoryAvatars},
	{"avatar_female", "Female Avatar", "/models/avatar_female.glb", "/thumbs/avatar_female.png", avatar.CategoryAvatars},
	{"avatar_robot", "Robot Avatar", "/models/avatar_robot.glb", "/thumbs/avatar_robot.png", avatar.CategoryAvatars},
	{"hat_cap", "Baseball Cap", "/models/hat_cap.glb", "/thumbs/hat_cap.png", avatar.CategoryHats},
	{"hat_tophat", "Top Hat", "/models/hat_tophat.glb", "", avatar.CategoryHats},
	{"hat_beanie", "Beanie", "/models/hat_beanie.glb", "", avatar.CategoryHats},
	{"shirt_tee", "Classic Tee", "/models/shirt_tee.glb", "/thumbs/shirt_tee.png", avatar.CategoryShirts},
	{"shirt_hoodie", "Hoodie", "/models/shirt_hoodie.glb", "", avatar.CategoryShirts},
	{"pants_jeans", "Jeans", "/models/pants_jeans.glb", "/thumbs/pants_jeans.png", avatar.CategoryPants},
	{"pants_cargo", "Cargo Pants", "/models/pants_cargo.glb", "", avatar.CategoryPants},
	{"acc_glasses", "Sunglasses", "/models/acc_glasses.glb", "/thumbs/acc_glasses.png", avatar.CategoryAccessories},
	{"acc_scarf", "Scarf", "/models/acc_scarf.glb", "", avatar.CategoryAccessories},
}

type seedExperience struct {
	id, title, creator, genre, description string
	playerCount                            int64
}

var defaultExperiences = []seedExperience{
	{"exp_skyward", "Skyward Odyssey", "NimbusWorks", "Adventure", "Soar between floating islands and uncover the storm temple.", 18432},
	{"exp_cafe", "Midnight Cafe RP", "LatteLabs", "Roleplay", "Run the night shift at the city's busiest cafe.", 9210},
	{"exp_arena", "Blade Arena", "ForgeFive", "Combat", "Fast rounds, tight arenas, one champion.", 25874},
	{"exp_farm", "Meadowbrook Farm", "Sodbusters", "Simulation", "Plant, trade, and grow the valley's finest farm.", 7301},
	{"exp_tower", "Tower of Regret", "ObbyKing", "Obby", "900 stages of increasingly unfair jumps.", 31552},
	{"exp_drift", "Neon Drift GP", "Slipstream", "Racing", "Drift through a rain-slick neon city at 300 km/h.", 12980},
}

type seedNews struct {
	id, title, category, summary, imageURL string
}

var defaultNews = []seedNews{
	{"news_winter", "Winter Event Begins", "Events", "Limited-time snow maps and exclusive hats, live now.", "/images/news_winter.jpg"},
	{"news_creator", "Creator Fund Applications Open", "Updates", "Monthly payouts for top-rated experiences start this quarter.", "/images/news_creator.jpg"},
	{"news_avatar", "New Avatar Editor Rollout", "Updates", "The 3D character studio is now available to all users.", "/images/news_avatar.jpg"},
}

type seedFriend struct {
	id, name, avatarURL, status string
	experienceID                string
}

// Demo friends shown to every user, continuing the original app's static
// friends list until a real social graph exists.
var demoFriends = []seedFriend{
	{"friend_zoe", "Zoe_Builds", "/images/friends/zoe.png", "online", "exp_skyward"},
	{"friend_max", "MaxPower99", "/images/friends/max.png", "online", "exp_arena"},
	{"friend_ivy", "ivy.codes", "/images/friends/ivy.png", "offline", ""},
}

// seed inserts the default data sets into empty tables. Re-running against
// a populated database is a no-op per table.
func seed(db *sql.DB) error {
	now := time.Now().Unix()

	if empty, err := tableEmpty(db, "items"); err != nil {
		return err
	} else if empty {
		for _, it := range defaultCatalog {
			var thumb sql.NullString
			if it.thumbnail != "" {
				thumb = sql.NullString{String: it.thumbnail, Valid: true}
			}
			if _, err := db.Exec(
				"INSERT INTO items (id, owner_id, name, model_url, thumbnail_url, category, user_owned, created_at) VALUES (?, NULL, ?, ?, ?, ?, 0, ?)",
				it.id, it.name, it.modelURL, thumb, string(it.category), now,
			); err != nil {
				return fmt.Errorf("failed to seed item %s: %w", it.id, err)
			}
		}
	}

	if empty, err := tableEmpty(db, "experiences"); err != nil {
		return err
	} else if empty {
		for _, e := range defaultExperiences {
			if _, err := db.Exec(
				"INSERT INTO experiences (id, title, creator, creator_avatar_url, thumbnail_url, player_count, genre, description) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
				e.id, e.title, e.creator, "/images/creators/"+e.id+".png", "/images/experiences/"+e.id+".jpg", e.playerCount, e.genre, e.description,
			); err != nil {
				return fmt.Errorf("failed to seed experience %s: %w", e.id, err)
			}
		}
	}

	if empty, err := tableEmpty(db, "news"); err != nil {
		return err
	} else if empty {
		for _, n := range defaultNews {
			if _, err := db.Exec(
				"INSERT INTO news (id, title, category, summary, image_url, created_at) VALUES (?, ?, ?, ?, ?, ?)",
				n.id, n.title, n.category, n.summary, n.imageURL, now,
			); err != nil {
				return fmt.Errorf("failed to seed news %s: %w", n.id, err)
			}
		}
	}

	if empty, err := tableEmpty(db, "friends"); err != nil {
		return err
	} else if empty {
		for _, f := range demoFriends {
			var exp sql.NullString
			if f.experienceID != "" {
				exp = sql.NullString{String: f.experienceID, Valid: true}
			}
			if _, err := db.Exec(
				"INSERT INTO friends (id, user_id, name, avatar_url, status, current_experience_id) VALUES (?, NULL, ?, ?, ?, ?)",
				f.id, f.name, f.avatarURL, f.status, exp,
			); err != nil {
				return fmt.Errorf("failed to seed friend %s: %w", f.id, err)
			}
		}
	}

	return nil
}

func tableEmpty(db *sql.DB, table string) (bool, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n == 0, nil
}
