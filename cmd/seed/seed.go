package main

import (
	"errors"
	"fmt"

	"sakura-community/pkg/access"
	"sakura-community/pkg/config"
	"sakura-community/pkg/logger"
	"sakura-community/pkg/models"
	"sakura-community/pkg/password"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errAdminPasswordRequired = errors.New("ADMIN_PASSWORD must be set to seed the administrator")

const demoPassword = "sakura123"

type seeder struct {
	db     *gorm.DB
	hasher *password.Hasher
	log    *logger.Logger
}

// seedAdmin creates the configured administrator, or promotes an existing
// account with that username. Running it twice changes nothing.
func (s *seeder) seedAdmin(cfg *config.Config) error {
	var existing models.User
	err := s.db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	switch {
	case err == nil:
		if existing.Role == access.RoleAdmin {
			s.log.Info("Administrator %s already exists, skipping", existing.Username)
			return nil
		}
		if err := s.db.Model(&existing).Update("role", access.RoleAdmin).Error; err != nil {
			return fmt.Errorf("promote %s: %w", existing.Username, err)
		}
		s.log.Info("Promoted %s to administrator", existing.Username)
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("look up administrator: %w", err)
	}

	if cfg.AdminPassword == "" {
		return errAdminPasswordRequired
	}

	admin, err := s.newUser(cfg.AdminUsername, cfg.AdminDisplayName, cfg.AdminEmail, cfg.AdminPassword, access.RoleAdmin)
	if err != nil {
		return err
	}
	if err := s.db.Create(admin).Error; err != nil {
		return fmt.Errorf("create administrator: %w", err)
	}

	s.log.Info("Created administrator %s (id=%d)", admin.Username, admin.ID)
	return nil
}

// seedDemo fills an empty forum with a few accounts and threads.
func (s *seeder) seedDemo() error {
	demoUsers := []struct {
		username    string
		displayName string
	}{
		{"sakura", "Sakura Haruno"},
		{"hinata", "Hinata Hyuga"},
		{"kakashi", "Kakashi Hatake"},
	}

	users := make([]*models.User, 0, len(demoUsers))
	for _, data := range demoUsers {
		var user models.User
		err := s.db.Where("username = ?", data.username).First(&user).Error
		if err == nil {
			s.log.Info("User %s already exists, skipping", data.username)
			users = append(users, &user)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up %s: %w", data.username, err)
		}

		created, err := s.newUser(data.username, data.displayName, data.username+"@sakura.local", demoPassword, access.RoleUser)
		if err != nil {
			return err
		}
		if err := s.db.Create(created).Error; err != nil {
			return fmt.Errorf("create %s: %w", data.username, err)
		}
		s.log.Info("Created user: %s", created.Username)
		users = append(users, created)
	}

	var posts int64
	if err := s.db.Model(&models.Post{}).Count(&posts).Error; err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if posts > 0 {
		s.log.Info("Forum already has %d posts, skipping demo threads", posts)
		return nil
	}

	threads := []struct {
		title   string
		content string
	}{
		{"Welcome to Sakura Community", "Introduce yourself and tell us what you are watching this season."},
		{"Spring season recommendations", "Which new series are worth following?"},
		{"Favourite opening themes", "Share the openings you never skip."},
	}

	for i, thread := range threads {
		author := users[i%len(users)]
		post := &models.Post{Title: thread.title, Content: thread.content, UserID: author.ID}
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("create post %q: %w", thread.title, err)
		}

		for j, reader := range users {
			if reader.ID == author.ID {
				continue
			}
			comment := &models.Comment{
				Content: fmt.Sprintf("Great thread, %s!", author.DisplayName),
				PostID:  post.ID,
				UserID:  reader.ID,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("comment on %q: %w", thread.title, err)
			}
			if j%2 == 0 {
				like := &models.Like{PostID: post.ID, UserID: reader.ID}
				if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
					return fmt.Errorf("like %q: %w", thread.title, err)
				}
			}
		}
	}

	s.log.Info("Created %d demo posts", len(threads))
	return nil
}

func (s *seeder) newUser(username, displayName, email, plaintext string, role access.Role) (*models.User, error) {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", username, err)
	}
	return &models.User{
		Username:    username,
		DisplayName: displayName,
		Email:       email,
		Password:    hash,
		Role:        role,
	}, nil
}
