package seed

import (
	"gameportal/config"
	"gameportal/internal/logger"

	. "gameportal/internal/models"

	"gorm.io/gorm"
)

// Seed populates a development database with a small set of users,
// games, reviews, and play history. Existing rows are left alone so
// the command can be re-run safely.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	creators, players, err := seedUsers(db, log)
	if err != nil {
		return err
	}

	games, err := seedGames(db, creators, log)
	if err != nil {
		return err
	}

	if err := seedActivity(db, players, games, log); err != nil {
		return err
	}

	return nil
}

func seedUsers(db *gorm.DB, log logger.Logger) ([]*User, []*User, error) {
	creators := make([]*User, 0)
	players := make([]*User, 0)

	type userSeed struct {
		name    string
		creator bool
	}

	seeds := []userSeed{
		{name: "Indie Works", creator: true},
		{name: "Pixel Forge", creator: true},
		{name: "Ada", creator: false},
		{name: "Grace", creator: false},
		{name: "Linus", creator: false},
	}

	for _, s := range seeds {
		name, err := NewUserName(s.name)
		if err != nil {
			return nil, nil, log.Err("invalid seed user name", err, "name", s.name)
		}

		var existing User
		if err := db.First(&existing, "name = ?", name).Error; err == nil {
			log.Info("User already exists", "name", s.name)
			if existing.IsCreator() {
				creators = append(creators, &existing)
			} else {
				players = append(players, &existing)
			}
			continue
		}

		var user *User
		if s.creator {
			user = NewCreator(name)
		} else {
			user = NewPlayer(name)
		}

		if err := db.Create(user).Error; err != nil {
			return nil, nil, log.Err("failed to create seed user", err, "name", s.name)
		}
		log.Info("Seeded user", "name", s.name, "type", user.Type)

		if s.creator {
			creators = append(creators, user)
		} else {
			players = append(players, user)
		}
	}

	return creators, players, nil
}

func seedGames(db *gorm.DB, creators []*User, log logger.Logger) ([]*Game, error) {
	if len(creators) < 2 {
		return nil, log.ErrMsg("not enough creators to seed games")
	}

	type gameSeed struct {
		title   string
		url     string
		tags    []string
		creator *User
	}

	seeds := []gameSeed{
		{
			title:   "Dungeon Depths",
			url:     "https://games.example.com/dungeon-depths",
			tags:    []string{"rpg", "roguelike", "fantasy"},
			creator: creators[0],
		},
		{
			title:   "Starlane Trader",
			url:     "https://games.example.com/starlane-trader",
			tags:    []string{"strategy", "space", "trading"},
			creator: creators[0],
		},
		{
			title:   "Puzzle Garden",
			url:     "https://games.example.com/puzzle-garden",
			tags:    []string{"puzzle", "casual"},
			creator: creators[1],
		},
		{
			title:   "Blade Runner Kart",
			url:     "https://games.example.com/blade-runner-kart",
			tags:    []string{"racing", "arcade", "action"},
			creator: creators[1],
		},
	}

	games := make([]*Game, 0, len(seeds))

	for _, s := range seeds {
		var existing Game
		if err := db.First(&existing, "title = ?", s.title).Error; err == nil {
			log.Info("Game already exists", "title", s.title)
			games = append(games, &existing)
			continue
		}

		title, err := NewGameTitle(s.title)
		if err != nil {
			return nil, log.Err("invalid seed game title", err, "title", s.title)
		}
		gameURL, err := NewGameURL(s.url)
		if err != nil {
			return nil, log.Err("invalid seed game url", err, "url", s.url)
		}
		tags, err := NewGameTags(s.tags)
		if err != nil {
			return nil, log.Err("invalid seed game tags", err, "title", s.title)
		}

		game := NewGame(title, gameURL, tags, s.creator.ID)
		if err := db.Create(game).Error; err != nil {
			return nil, log.Err("failed to create seed game", err, "title", s.title)
		}
		log.Info("Seeded game", "title", s.title)
		games = append(games, game)
	}

	return games, nil
}

func seedActivity(db *gorm.DB, players []*User, games []*Game, log logger.Logger) error {
	if len(players) == 0 || len(games) == 0 {
		return nil
	}

	var existing int64
	if err := db.Model(&PlayHistory{}).Count(&existing).Error; err != nil {
		return log.Err("failed to count play history", err)
	}
	if existing > 0 {
		log.Info("Play history already seeded, skipping activity")
		return nil
	}

	for i, player := range players {
		// Each player plays a different slice of the catalog.
		for j, game := range games {
			if (i+j)%2 != 0 {
				continue
			}

			play := NewPlayHistory(player.ID, game.ID)
			if err := db.Create(play).Error; err != nil {
				return log.Err("failed to create seed play history", err)
			}

			content, err := NewReviewContent("Really enjoyed this one, the pacing is excellent.")
			if err != nil {
				return log.Err("invalid seed review content", err)
			}
			rating, err := NewReviewRating(3 + (i+j)%3)
			if err != nil {
				return log.Err("invalid seed review rating", err)
			}

			review, err := game.AddReview(player.ID, content, rating)
			if err != nil {
				log.Warn("Skipping seed review", "error", err)
				continue
			}
			if err := db.Create(review).Error; err != nil {
				return log.Err("failed to create seed review", err)
			}
		}
	}

	log.Info("Seeded play history and reviews")
	return nil
}
