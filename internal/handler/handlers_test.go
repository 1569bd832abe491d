package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/repository"
	"github.com/osse101/CraftQuest_Go/mocks"
)

var vestRecipe = domain.Recipe{
	OutputKind: domain.KindArmor,
	OutputID:   1,
	Ingredients: []domain.Ingredient{
		{Kind: domain.KindConsumable, ID: 1, Count: 5},
		{Kind: domain.KindConsumable, ID: 2, Count: 1},
	},
}

func TestHandleGetRecipes(t *testing.T) {
	t.Run("lists recipes", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("Recipes", mock.Anything, "a").Return([]domain.RecipeListing{
			{Recipe: vestRecipe, Name: "Leather Vest", Affordable: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes?slot=a", nil)
		rr := httptest.NewRecorder()
		HandleGetRecipes(mockSvc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []domain.RecipeListing
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.True(t, got[0].Affordable)
		assert.Equal(t, vestRecipe, got[0].Recipe)
	})

	t.Run("rejects control characters in slot", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes?slot=a%09b", nil)
		rr := httptest.NewRecorder()
		HandleGetRecipes(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleCraft(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockSessionService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: CraftRequest{Kind: "armor", ID: 1},
			setupMock: func(m *mocks.MockSessionService) {
				m.On("Craft", mock.Anything, "", domain.KindArmor, 1).Return(vestRecipe, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Crafted armor:1",
		},
		{
			name:        "Not affordable",
			requestBody: CraftRequest{Kind: "armor", ID: 1},
			setupMock: func(m *mocks.MockSessionService) {
				m.On("Craft", mock.Anything, "", domain.KindArmor, 1).
					Return(domain.Recipe{}, fmt.Errorf("craft armor:1: %w", domain.ErrInsufficientIngredients))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   ErrMsgInsufficientIngredientsErr,
		},
		{
			name:        "No recipe",
			requestBody: CraftRequest{Kind: "weapon", ID: 2},
			setupMock: func(m *mocks.MockSessionService) {
				m.On("Craft", mock.Anything, "", domain.KindWeapon, 2).Return(domain.Recipe{}, domain.ErrRecipeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgRecipeNotFoundError,
		},
		{
			name:           "Bad kind",
			requestBody:    CraftRequest{Kind: "Armor", ID: 1},
			setupMock:      func(m *mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be one of item, weapon, armor",
		},
		{
			name:           "Zero id",
			requestBody:    CraftRequest{Kind: "armor"},
			setupMock:      func(m *mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"id"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockSessionService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/craft", jsonBody(t, tt.requestBody))
			rr := httptest.NewRecorder()
			HandleCraft(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetQuests(t *testing.T) {
	listing := domain.QuestListing{
		Bucket:  domain.BucketCompleted,
		Label:   domain.DefaultCompletedLabel,
		Entries: []domain.QuestEntry{{ID: 4, Title: "Find the key", Descriptions: []string{"Key found"}}},
	}

	t.Run("completed bucket", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("Quests", mock.Anything, "", domain.BucketCompleted).Return(listing, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quests?bucket=completed", nil)
		rr := httptest.NewRecorder()
		HandleGetQuests(mockSvc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got domain.QuestListing
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, listing, got)
	})

	t.Run("defaults to in progress", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("Quests", mock.Anything, "", domain.BucketInProgress).
			Return(domain.QuestListing{Bucket: domain.BucketInProgress}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quests", nil)
		rr := httptest.NewRecorder()
		HandleGetQuests(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown bucket", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/quests?bucket=archived", nil)
		rr := httptest.NewRecorder()
		HandleGetQuests(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), ParamBucket)
	})
}

func TestHandleGetInventory(t *testing.T) {
	mockSvc := mocks.NewMockSessionService(t)
	mockSvc.On("Inventory", mock.Anything, "").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)
	rr := httptest.NewRecorder()
	HandleGetInventory(mockSvc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"slot":"default","items":[]}`, rr.Body.String())
}

func TestHandleSaveLoad(t *testing.T) {
	InitValidator()

	t.Run("save", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("Save", mock.Anything, "a").Return(domain.SaveState{Version: domain.SaveStateVersion}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/save", jsonBody(t, SlotRequest{Slot: "a"}))
		rr := httptest.NewRecorder()
		HandleSave(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Saved slot a")
	})

	t.Run("save store failure", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("Save", mock.Anything, "a").Return(domain.SaveState{}, errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/save", jsonBody(t, SlotRequest{Slot: "a"}))
		rr := httptest.NewRecorder()
		HandleSave(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), ErrMsgGenericServerError)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})

	t.Run("load missing", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("Load", mock.Anything, "").Return(fmt.Errorf("load slot default: %w", domain.ErrSaveNotFound))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/load", jsonBody(t, SlotRequest{}))
		rr := httptest.NewRecorder()
		HandleLoad(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), ErrMsgSaveNotFoundError)
	})

	t.Run("load", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("Load", mock.Anything, "").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/load", jsonBody(t, SlotRequest{}))
		rr := httptest.NewRecorder()
		HandleLoad(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Loaded slot default")
	})
}

func TestHandleSavesAdmin(t *testing.T) {
	InitValidator()

	t.Run("list", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("ListSaves", mock.Anything).Return([]repository.SlotInfo{
			{Slot: "a", Version: domain.SaveStateVersion, SavedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		}, nil)

		rr := httptest.NewRecorder()
		HandleListSaves(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/saves", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp SavesResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp.Saves, 1)
		assert.Equal(t, "a", resp.Saves[0].Slot)
	})

	t.Run("list empty", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("ListSaves", mock.Anything).Return(nil, nil)

		rr := httptest.NewRecorder()
		HandleListSaves(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/saves", nil))

		assert.JSONEq(t, `{"saves":[]}`, rr.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("DeleteSave", mock.Anything, "a").Return(nil)

		rr := httptest.NewRecorder()
		HandleDeleteSave(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/save?slot=a", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Deleted save a")
	})

	t.Run("delete missing", func(t *testing.T) {
		mockSvc := mocks.NewMockSessionService(t)
		mockSvc.On("DeleteSave", mock.Anything, "gone").Return(fmt.Errorf("delete slot gone: %w", domain.ErrSaveNotFound))

		rr := httptest.NewRecorder()
		HandleDeleteSave(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/save?slot=gone", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	HandleReadyz(stubPinger{err: errors.New("down")}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = httptest.NewRecorder()
	HandleReadyz(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("x: %w", domain.ErrAlreadyRegistered), http.StatusConflict},
		{fmt.Errorf("x: %w", domain.ErrUnknownOutputItem), http.StatusBadRequest},
		{fmt.Errorf("x: %w", domain.ErrMalformedIngredient), http.StatusUnprocessableEntity},
		{fmt.Errorf("x: %w", domain.ErrQuestNotFound), http.StatusNotFound},
		{fmt.Errorf("x: %w", domain.ErrInvalidTitle), http.StatusBadRequest},
		{fmt.Errorf("x: %w", domain.ErrInventoryFull), http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
		assert.NotEmpty(t, msg)
	}
}
