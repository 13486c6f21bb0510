package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolioapi/models"
	"portfolioapi/repository"
)

type fakeHeroRepo struct {
	hero *models.HeroProfile
}

func (r *fakeHeroRepo) GetHero() (*models.HeroProfile, error) {
	if r.hero == nil {
		return nil, repository.ErrNotFound
	}
	dup := *r.hero
	return &dup, nil
}

func (r *fakeHeroRepo) SaveHero(hero *models.HeroProfile) error {
	dup := *hero
	r.hero = &dup
	return nil
}

func TestGetHeroNotFound(t *testing.T) {
	h := &HeroHandler{Repo: &fakeHeroRepo{}, Upload: fakeUpload}

	rec := httptest.NewRecorder()
	h.GetHero(rec, httptest.NewRequest(http.MethodGet, "/api/hero", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateHeroPreservesFileURLs(t *testing.T) {
	image := "https://cdn.example.com/image/old.png"
	resume := "https://cdn.example.com/resume/old.pdf"
	repo := &fakeHeroRepo{hero: &models.HeroProfile{
		ID:           models.HeroID,
		Name:         "Old Name",
		ProfileImage: &image,
		ResumeURL:    &resume,
	}}
	h := &HeroHandler{Repo: repo, Upload: fakeUpload}

	buf, contentType := multipartBody(t, map[string]string{"name": "X"}, nil)
	req := httptest.NewRequest(http.MethodPut, "/api/admin/hero", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UpdateHero(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var resp ApiResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if !resp.Success {
		t.Error("response should report success")
	}

	if repo.hero.Name != "X" {
		t.Errorf("Name = %q, want %q", repo.hero.Name, "X")
	}
	if repo.hero.ProfileImage == nil || *repo.hero.ProfileImage != image {
		t.Errorf("ProfileImage = %v, want preserved %q", repo.hero.ProfileImage, image)
	}
	if repo.hero.ResumeURL == nil || *repo.hero.ResumeURL != resume {
		t.Errorf("ResumeURL = %v, want preserved %q", repo.hero.ResumeURL, resume)
	}
}

func TestUpdateHeroWithUploads(t *testing.T) {
	repo := &fakeHeroRepo{hero: &models.HeroProfile{ID: models.HeroID}}
	h := &HeroHandler{Repo: repo, Upload: fakeUpload}

	buf, contentType := multipartBody(t,
		map[string]string{"name": "X", "title": "Economist"},
		map[string][2]string{
			"image":  {"me.png", "fake-png"},
			"resume": {"cv.pdf", "fake-pdf"},
		})
	req := httptest.NewRequest(http.MethodPut, "/api/admin/hero", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UpdateHero(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if repo.hero.ProfileImage == nil || !strings.Contains(*repo.hero.ProfileImage, "me.png") {
		t.Errorf("ProfileImage = %v, want uploaded URL", repo.hero.ProfileImage)
	}
	if repo.hero.ResumeURL == nil || !strings.Contains(*repo.hero.ResumeURL, "cv.pdf") {
		t.Errorf("ResumeURL = %v, want uploaded URL", repo.hero.ResumeURL)
	}
	if repo.hero.Title != "Economist" {
		t.Errorf("Title = %q, want %q", repo.hero.Title, "Economist")
	}
}

// The update contract is full overwrite for text fields: a client that omits
// a field blanks it out.
func TestUpdateHeroOverwritesOmittedTextFields(t *testing.T) {
	repo := &fakeHeroRepo{hero: &models.HeroProfile{
		ID:    models.HeroID,
		Name:  "Old Name",
		Email: "old@example.com",
	}}
	h := &HeroHandler{Repo: repo, Upload: fakeUpload}

	buf, contentType := multipartBody(t, map[string]string{"name": "New Name"}, nil)
	req := httptest.NewRequest(http.MethodPut, "/api/admin/hero", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UpdateHero(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.hero.Name != "New Name" {
		t.Errorf("Name = %q, want %q", repo.hero.Name, "New Name")
	}
	if repo.hero.Email != "" {
		t.Errorf("Email = %q, want blanked", repo.hero.Email)
	}
}
