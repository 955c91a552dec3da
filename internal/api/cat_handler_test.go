package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klowran/cats-api/internal/domain"
	"github.com/klowran/cats-api/internal/mapping"
	"github.com/klowran/cats-api/internal/service"
	"github.com/klowran/cats-api/internal/store"
)

// fakeCatService is an in-memory CatService for handler tests.
type fakeCatService struct {
	cats   map[int64]domain.Cat
	breeds map[int64]string
	nextID int64
}

var _ service.CatService = (*fakeCatService)(nil)

func newFakeCatService(breeds map[int64]string) *fakeCatService {
	return &fakeCatService{
		cats:   make(map[int64]domain.Cat),
		breeds: breeds,
	}
}

func (s *fakeCatService) insert(dto mapping.CatCreateDTO) (int64, error) {
	if _, ok := s.breeds[dto.BreedID]; !ok {
		return 0, fmt.Errorf("%w: breed with ID %d", store.ErrInvalidReference, dto.BreedID)
	}
	s.nextID++
	s.cats[s.nextID] = domain.Cat{
		ID:        s.nextID,
		Name:      dto.Name,
		Likes:     dto.Likes,
		Dislikes:  dto.Dislikes,
		Age:       dto.Age,
		BreedID:   dto.BreedID,
		BreedName: s.breeds[dto.BreedID],
	}
	return s.nextID, nil
}

func (s *fakeCatService) Create(ctx context.Context, dto mapping.CatCreateDTO) (*mapping.CatDTO, error) {
	id, err := s.insert(dto)
	if err != nil {
		return nil, err
	}
	cat := s.cats[id]
	result := mapping.CatToDTO(&cat)
	return &result, nil
}

func (s *fakeCatService) CreateBatch(ctx context.Context, dtos []mapping.CatCreateDTO) error {
	for _, dto := range dtos {
		if _, ok := s.breeds[dto.BreedID]; !ok {
			return fmt.Errorf("%w: breed with ID %d", store.ErrInvalidReference, dto.BreedID)
		}
	}
	for _, dto := range dtos {
		if _, err := s.insert(dto); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeCatService) List(ctx context.Context, filter store.CatFilter) ([]mapping.CatDTO, error) {
	result := make([]mapping.CatDTO, 0)
	for _, cat := range s.cats {
		if filter.Matches(&cat) {
			result = append(result, mapping.CatToDTO(&cat))
		}
	}
	return result, nil
}

func (s *fakeCatService) Get(ctx context.Context, id int64) (*mapping.CatDTO, error) {
	cat, ok := s.cats[id]
	if !ok {
		return nil, store.ErrCatNotFound
	}
	result := mapping.CatToDTO(&cat)
	return &result, nil
}

func (s *fakeCatService) Update(ctx context.Context, id int64, dto mapping.CatCreateDTO) error {
	cat, ok := s.cats[id]
	if !ok {
		return store.ErrCatNotFound
	}
	cat.Name = dto.Name
	cat.Likes = dto.Likes
	cat.Dislikes = dto.Dislikes
	cat.Age = dto.Age
	s.cats[id] = cat
	return nil
}

func (s *fakeCatService) Delete(ctx context.Context, id int64) error {
	if _, ok := s.cats[id]; !ok {
		return store.ErrCatNotFound
	}
	delete(s.cats, id)
	return nil
}

func newCatTestRouter(svc service.CatService) http.Handler {
	handler := NewCatHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/cats", handler.Create)
	r.Get("/api/cats", handler.List)
	r.Get("/api/cats/{id}", handler.Get)
	r.Put("/api/cats/{id}", handler.Update)
	r.Delete("/api/cats/{id}", handler.Delete)
	r.Post("/api/cats/upload-csv", handler.UploadCSV)
	return r
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCatHandlerCreate(t *testing.T) {
	t.Parallel()

	router := newCatTestRouter(newFakeCatService(map[int64]string{7: "Siamese"}))

	req := jsonRequest(t, "POST", "/api/cats", mapping.CatCreateDTO{
		Name:    "Whiskers",
		Likes:   "tuna",
		Age:     3,
		BreedID: 7,
	})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "/api/cats/1", recorder.Header().Get("Location"))

	var created mapping.CatDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Whiskers", created.Name)
	assert.Equal(t, "Siamese", created.Breed)
}

func TestCatHandlerCreateRejectsBadInput(t *testing.T) {
	t.Parallel()

	router := newCatTestRouter(newFakeCatService(map[int64]string{7: "Siamese"}))

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{
			name:    "missing name",
			payload: map[string]interface{}{"age": 3, "breedId": 7},
		},
		{
			name:    "missing breed",
			payload: map[string]interface{}{"name": "Whiskers", "age": 3},
		},
		{
			name:    "negative age",
			payload: map[string]interface{}{"name": "Whiskers", "age": -1, "breedId": 7},
		},
		{
			name:    "unknown breed",
			payload: map[string]interface{}{"name": "Whiskers", "age": 3, "breedId": 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, jsonRequest(t, "POST", "/api/cats", tt.payload))
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}

	// Malformed JSON
	req := httptest.NewRequest("POST", "/api/cats", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCatHandlerGet(t *testing.T) {
	t.Parallel()

	svc := newFakeCatService(map[int64]string{7: "Siamese"})
	_, err := svc.Create(context.Background(), mapping.CatCreateDTO{Name: "Whiskers", Age: 3, BreedID: 7})
	require.NoError(t, err)
	router := newCatTestRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/cats/1", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got mapping.CatDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	assert.Equal(t, "Whiskers", got.Name)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/cats/999", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/cats/abc", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCatHandlerList(t *testing.T) {
	t.Parallel()

	svc := newFakeCatService(map[int64]string{7: "Siamese", 8: "Persian"})
	ctx := context.Background()
	for _, dto := range []mapping.CatCreateDTO{
		{Name: "Whiskers", Likes: "tuna", Age: 3, BreedID: 7},
		{Name: "Mittens", Likes: "naps", Age: 1, BreedID: 8},
	} {
		_, err := svc.Create(ctx, dto)
		require.NoError(t, err)
	}
	router := newCatTestRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/cats", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var all []mapping.CatDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&all))
	assert.Len(t, all, 2)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/cats?likes=tuna&age=3", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var filtered []mapping.CatDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Whiskers", filtered[0].Name)

	// Malformed numeric parameter
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/cats?age=old", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// No matches serializes as an empty array
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/cats?name=Nessie", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]\n", recorder.Body.String())
}

func TestCatHandlerUpdate(t *testing.T) {
	t.Parallel()

	svc := newFakeCatService(map[int64]string{7: "Siamese"})
	_, err := svc.Create(context.Background(), mapping.CatCreateDTO{Name: "Whiskers", Age: 3, BreedID: 7})
	require.NoError(t, err)
	router := newCatTestRouter(svc)

	req := jsonRequest(t, "PUT", "/api/cats/1", mapping.CatCreateDTO{
		Name:    "Mittens",
		Age:     4,
		BreedID: 7,
	})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	assert.Equal(t, "Mittens", svc.cats[1].Name)

	req = jsonRequest(t, "PUT", "/api/cats/999", mapping.CatCreateDTO{
		Name:    "Ghost",
		Age:     1,
		BreedID: 7,
	})
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCatHandlerDelete(t *testing.T) {
	t.Parallel()

	svc := newFakeCatService(map[int64]string{7: "Siamese"})
	_, err := svc.Create(context.Background(), mapping.CatCreateDTO{Name: "Whiskers", Age: 3, BreedID: 7})
	require.NoError(t, err)
	router := newCatTestRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/cats/1", nil))
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, svc.cats)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/cats/1", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func multipartCSVRequest(t *testing.T, target, field, contents string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "upload.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCatHandlerUploadCSV(t *testing.T) {
	t.Parallel()

	svc := newFakeCatService(map[int64]string{7: "Siamese"})
	router := newCatTestRouter(svc)

	csv := "name,likes,dislikes,age,breedId\nWhiskers,tuna,water,3,7\nMittens,naps,vacuum,1,7\n"
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, multipartCSVRequest(t, "/api/cats/upload-csv", "csv", csv))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, svc.cats, 2)
}

func TestCatHandlerUploadCSVRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	svc := newFakeCatService(map[int64]string{7: "Siamese"})
	router := newCatTestRouter(svc)

	csv := "name,likes,dislikes,age,breedId\nWhiskers,tuna,water,old,7\n"
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, multipartCSVRequest(t, "/api/cats/upload-csv", "csv", csv))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, svc.cats, "no rows may be imported from a malformed file")
}

func TestCatHandlerUploadCSVRequiresFile(t *testing.T) {
	t.Parallel()

	router := newCatTestRouter(newFakeCatService(map[int64]string{7: "Siamese"}))

	// Wrong field name
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, multipartCSVRequest(t, "/api/cats/upload-csv", "file", "name\n"))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// No multipart body at all
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/api/cats/upload-csv", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
