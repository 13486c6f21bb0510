package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"portfolioapi/models"
	"portfolioapi/repository"
	"portfolioapi/utils"
)

// UploadFunc relays a file to the media host and returns its public URL.
// Injected so handler tests run without R2 credentials.
type UploadFunc func(fileBytes []byte, filename string, kind utils.UploadKind) (string, error)

// maxUploadBytes caps request bodies, multipart included.
const maxUploadBytes = 10 << 20

type ArticleHandler struct {
	Repo   repository.ArticleRepository
	Upload UploadFunc
}

// ListArticles is the public listing: published articles only, newest first.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	filter := repository.ArticleFilter{
		PublishedOnly: true,
		Category:      r.URL.Query().Get("category"),
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		filter.Offset = v
	}

	articles, err := h.Repo.GetArticles(filter)
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}

// GetArticle serves a single published article by numeric id or slug and
// bumps its view counter as a side effect of the read.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request, idOrSlug string) {
	article, err := h.findByIDOrSlug(idOrSlug)
	if err != nil {
		writeStoreError(w, err, "Article not found")
		return
	}
	if !article.Published {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Article not found",
		})
		return
	}

	if err := h.Repo.IncrementViews(article.ID); err != nil {
		writeStoreError(w, err, "Article not found")
		return
	}
	article.Views++

	writeJSON(w, http.StatusOK, article)
}

func (h *ArticleHandler) findByIDOrSlug(idOrSlug string) (*models.Article, error) {
	if id, err := strconv.ParseInt(idOrSlug, 10, 64); err == nil {
		return h.Repo.GetArticleByID(id)
	}
	return h.Repo.GetArticleBySlug(idOrSlug)
}

// AdminListArticles returns every article, drafts included, id descending.
func (h *ArticleHandler) AdminListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Repo.GetArticles(repository.ArticleFilter{SortByID: true})
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}

// CreateArticle handles the admin create call: multipart form or JSON body,
// optional cover image relayed to the media host.
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseArticleForm(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	article := &models.Article{Tags: []string{}}
	form.apply(article)

	if article.Title == "" || article.Slug == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Title and slug are required",
		})
		return
	}

	if form.imageBytes != nil {
		url, err := h.Upload(form.imageBytes, form.imageName, utils.UploadCover)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Upload failed: " + err.Error(),
			})
			return
		}
		article.CoverImage = &url
	}

	if err := h.Repo.CreateArticle(article); err != nil {
		writeStoreError(w, err, "Article not found")
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

// UpdateArticle applies a partial update: absent fields keep their stored
// values, and the cover image only changes when a new file is uploaded.
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid article id",
		})
		return
	}

	article, err := h.Repo.GetArticleByID(id)
	if err != nil {
		writeStoreError(w, err, "Article not found")
		return
	}

	form, err := h.parseArticleForm(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	form.apply(article)

	if article.Title == "" || article.Slug == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Title and slug are required",
		})
		return
	}

	if form.imageBytes != nil {
		url, err := h.Upload(form.imageBytes, form.imageName, utils.UploadCover)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Upload failed: " + err.Error(),
			})
			return
		}
		article.CoverImage = &url
	}

	if err := h.Repo.UpdateArticle(article); err != nil {
		writeStoreError(w, err, "Article not found")
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid article id",
		})
		return
	}

	if err := h.Repo.DeleteArticle(id); err != nil {
		writeStoreError(w, err, "Article not found")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Article deleted successfully",
	})
}

func (h *ArticleHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.GetCategories()
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *ArticleHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Repo.GetTags()
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, tags)
}

// articleForm carries the decoded request fields. Nil pointers mean
// "not supplied" so updates can leave stored values alone.
type articleForm struct {
	Title     *string   `json:"title"`
	Slug      *string   `json:"slug"`
	Summary   *string   `json:"summary"`
	Content   *string   `json:"content"`
	Category  *string   `json:"category"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`

	imageBytes []byte
	imageName  string
}

func (f *articleForm) apply(article *models.Article) {
	if f.Title != nil {
		article.Title = *f.Title
	}
	if f.Slug != nil {
		article.Slug = *f.Slug
	}
	if f.Summary != nil {
		article.Summary = *f.Summary
	}
	if f.Content != nil {
		article.Content = *f.Content
	}
	if f.Category != nil {
		article.Category = *f.Category
	}
	if f.Tags != nil {
		article.Tags = *f.Tags
	}
	if f.Published != nil {
		article.Published = *f.Published
	}
}

// parseArticleForm accepts either a multipart form (with an optional "image"
// part) or a plain JSON body.
func (h *ArticleHandler) parseArticleForm(w http.ResponseWriter, r *http.Request) (*articleForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		form := &articleForm{}
		if err := json.NewDecoder(r.Body).Decode(form); err != nil {
			return nil, err
		}
		return form, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, err
	}

	form := &articleForm{}
	if v, ok := formValue(r, "title"); ok {
		form.Title = &v
	}
	if v, ok := formValue(r, "slug"); ok {
		form.Slug = &v
	}
	if v, ok := formValue(r, "summary"); ok {
		form.Summary = &v
	}
	if v, ok := formValue(r, "content"); ok {
		form.Content = &v
	}
	if v, ok := formValue(r, "category"); ok {
		form.Category = &v
	}
	if v, ok := formValue(r, "tags"); ok {
		tags := models.ParseTags(v)
		form.Tags = &tags
	}
	if v, ok := formValue(r, "published"); ok {
		published := v == "true" || v == "1" || v == "on"
		form.Published = &published
	}

	bytes, name, err := formFile(r, "image")
	if err != nil {
		return nil, err
	}
	form.imageBytes = bytes
	form.imageName = name

	return form, nil
}

// formValue reports presence, distinguishing an empty value from a
// missing field.
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// formFile reads an optional multipart file into memory. A missing part is
// not an error.
func formFile(r *http.Request, key string) ([]byte, string, error) {
	file, header, err := r.FormFile(key)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}
