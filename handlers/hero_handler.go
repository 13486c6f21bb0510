package handlers

import (
	"net/http"

	"portfolioapi/models"
	"portfolioapi/repository"
	"portfolioapi/utils"
)

type HeroHandler struct {
	Repo   repository.HeroRepository
	Upload UploadFunc
}

// GetHero returns the public profile record.
func (h *HeroHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.Repo.GetHero()
	if err != nil {
		writeStoreError(w, err, "Hero profile not found")
		return
	}
	writeJSON(w, http.StatusOK, hero)
}

// UpdateHero overwrites the profile's text fields from the form body and
// replaces the image/resume URLs only when a new file is uploaded. Clients
// must resend every text field; an omitted field blanks the stored value.
func (h *HeroHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	current, err := h.Repo.GetHero()
	if err != nil {
		if err != repository.ErrNotFound {
			writeStoreError(w, err, "")
			return
		}
		current = &models.HeroProfile{ID: models.HeroID}
	}

	hero := &models.HeroProfile{
		ID:           models.HeroID,
		Name:         r.FormValue("name"),
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Phone:        r.FormValue("phone"),
		Email:        r.FormValue("email"),
		Location:     r.FormValue("location"),
		ProfileImage: current.ProfileImage,
		ResumeURL:    current.ResumeURL,
	}

	imageBytes, imageName, err := formFile(r, "image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid image upload: " + err.Error(),
		})
		return
	}
	if imageBytes != nil {
		url, err := h.Upload(imageBytes, imageName, utils.UploadHeroImage)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Upload failed: " + err.Error(),
			})
			return
		}
		hero.ProfileImage = &url
	}

	resumeBytes, resumeName, err := formFile(r, "resume")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid resume upload: " + err.Error(),
		})
		return
	}
	if resumeBytes != nil {
		url, err := h.Upload(resumeBytes, resumeName, utils.UploadResume)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Upload failed: " + err.Error(),
			})
			return
		}
		hero.ResumeURL = &url
	}

	if err := h.Repo.SaveHero(hero); err != nil {
		writeStoreError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true})
}
