package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rsalazarq/storefront/internal/api/middleware"
	"github.com/rsalazarq/storefront/internal/models"
	service "github.com/rsalazarq/storefront/internal/services"
	"github.com/rsalazarq/storefront/internal/utils/response"
)

type FavoritosHandler struct {
	favoritosService *service.FavoritosService
	validator        *validator.Validate
}

func NewFavoritosHandler(favoritosService *service.FavoritosService) *FavoritosHandler {
	return &FavoritosHandler{
		favoritosService: favoritosService,
		validator:        validator.New(),
	}
}

func (h *FavoritosHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		favoritos, err := h.favoritosService.List(r.Context(), middleware.BearerToken(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, favoritos)
	}
}

func (h *FavoritosHandler) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var favorito models.Favorito
		if !decodeJSONBody(w, r, &favorito) {
			return
		}

		if !validateStruct(w, h.validator, favorito) {
			return
		}

		if err := h.favoritosService.Add(r.Context(), middleware.BearerToken(r), &favorito); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, favorito)
	}
}

func (h *FavoritosHandler) Toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var favorito models.Favorito
		if !decodeJSONBody(w, r, &favorito) {
			return
		}

		if !validateStruct(w, h.validator, favorito) {
			return
		}

		added, err := h.favoritosService.Toggle(r.Context(), middleware.BearerToken(r), &favorito)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"nombre": favorito.Nombre, "favorito": added})
	}
}

func (h *FavoritosHandler) Remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var favorito models.Favorito
		if !decodeJSONBody(w, r, &favorito) {
			return
		}

		if err := h.favoritosService.Remove(r.Context(), middleware.BearerToken(r), &favorito); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"removed": favorito.Nombre})
	}
}
