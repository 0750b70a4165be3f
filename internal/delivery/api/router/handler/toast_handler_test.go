package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestToastHandler_Show(t *testing.T) {
	toastUC := mockUC.NewMockToastUsecase(t)
	toastUC.EXPECT().Show(mock.Anything, &usecase.ToastInput{Message: "Producto agregado", Type: entity.ToastSuccess}).
		Return(entity.Toast{ID: 1, Message: "Producto agregado", Type: entity.ToastSuccess, DurationMS: 3000, Position: entity.ToastTopRight})

	rec := serve(t, NewToastHandler(toastUC).Show, testRequest{
		method: http.MethodPost,
		target: "/api/v1/toasts",
		body:   `{"message":"Producto agregado","type":"success"}`,
		sess:   guest(),
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	toast := decodeData[entity.Toast](t, rec)
	assert.Equal(t, 1, toast.ID)
	assert.Equal(t, entity.ToastTopRight, toast.Position)
}

func TestToastHandler_ShowRequiresMessage(t *testing.T) {
	rec := serve(t, NewToastHandler(mockUC.NewMockToastUsecase(t)).Show, testRequest{
		method: http.MethodPost,
		target: "/api/v1/toasts",
		body:   `{"type":"info"}`,
		sess:   guest(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToastHandler_List(t *testing.T) {
	toastUC := mockUC.NewMockToastUsecase(t)
	toastUC.EXPECT().List(mock.Anything).Return([]entity.Toast{{ID: 2, Message: "Hola"}})

	rec := serve(t, NewToastHandler(toastUC).List, testRequest{method: http.MethodGet, target: "/api/v1/toasts", sess: guest()})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Toast](t, rec), 1)
}

func TestToastHandler_Remove(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		removed    bool
		callsUC    bool
		wantStatus int
	}{
		{name: "removed", id: "2", removed: true, callsUC: true, wantStatus: http.StatusNoContent},
		{name: "unknown id", id: "9", callsUC: true, wantStatus: http.StatusNotFound},
		{name: "malformed id", id: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toastUC := mockUC.NewMockToastUsecase(t)
			if tt.callsUC {
				toastUC.EXPECT().Remove(mock.Anything, mock.AnythingOfType("int")).Return(tt.removed)
			}

			rec := serve(t, NewToastHandler(toastUC).Remove, testRequest{
				method: http.MethodDelete,
				target: "/api/v1/toasts/" + tt.id,
				params: map[string]string{"id": tt.id},
				sess:   guest(),
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
