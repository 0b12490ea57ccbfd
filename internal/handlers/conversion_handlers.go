package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/conversion"
	"github.com/convertly/convertly-api/internal/types/api/params"
	"github.com/convertly/convertly-api/internal/types/api/requests"
	"github.com/convertly/convertly-api/internal/types/api/responses"
)

// ConversionHandler serves the unit conversion endpoints
type ConversionHandler struct {
	common *CommonServices
}

// NewConversionHandler creates a new ConversionHandler
func NewConversionHandler(common *CommonServices) *ConversionHandler {
	return &ConversionHandler{common: common}
}

func conversionFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, responses.ConvertResponse{Success: false, Error: err.Error()})
}

// Convert godoc
// @Summary Convert a value
// @Description Converts a value between two units of the same type (currency, temperature, length or weight)
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body requests.ConvertRequest true "Conversion request"
// @Success 200 {object} responses.ConvertResponse
// @Failure 400 {object} responses.ConvertResponse
// @Router /api/convert [post]
func (h *ConversionHandler) Convert(c *gin.Context) {
	var req requests.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ConvertResponse{Success: false, Error: constants.InvalidRequestBody})
		return
	}

	value, ok := req.Value.Float()
	if !ok {
		conversionFailed(c, conversion.MalformedInput("value must be a number: %s", req.Value.Raw))
		return
	}

	res := h.common.conversionService.Convert(c.Request.Context(), params.ConvertParams{
		Type:     req.Type,
		Value:    value,
		FromUnit: req.FromUnit,
		ToUnit:   req.ToUnit,
	})
	if !res.Success() {
		conversionFailed(c, res.Err)
		return
	}

	result := conversion.Round(res.Converted, resultPlaces)
	sendSuccess(c, http.StatusOK, responses.ConvertResponse{
		Success: true,
		Result:  &result,
		Formula: res.Formula,
	})
}

// ConvertBatch godoc
// @Summary Convert many values
// @Description Converts every value between the same pair of units against one rate snapshot. Items fail independently.
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body requests.BatchConvertRequest true "Batch conversion request"
// @Success 200 {object} responses.BatchConvertResponse
// @Failure 400 {object} responses.BatchConvertResponse
// @Router /api/convert/batch [post]
func (h *ConversionHandler) ConvertBatch(c *gin.Context) {
	var req requests.BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.BatchConvertResponse{Success: false, Error: constants.InvalidRequestBody})
		return
	}
	switch {
	case len(req.Values) == 0:
		c.JSON(http.StatusBadRequest, responses.BatchConvertResponse{Success: false, Error: constants.EmptyBatch})
		return
	case len(req.Values) > constants.MaxBatchSize:
		c.JSON(http.StatusBadRequest, responses.BatchConvertResponse{Success: false, Error: constants.BatchTooLarge})
		return
	}

	items := make([]responses.BatchConvertItem, len(req.Values))
	values := make([]float64, 0, len(req.Values))
	positions := make([]int, 0, len(req.Values))
	for i, raw := range req.Values {
		v, ok := raw.Float()
		if !ok {
			items[i] = responses.BatchConvertItem{
				Value: raw.Raw,
				Error: conversion.MalformedInput("value must be a number: %s", raw.Raw).Error(),
			}
			continue
		}
		items[i].Value = v
		values = append(values, v)
		positions = append(positions, i)
	}

	if len(values) > 0 {
		results := h.common.conversionService.ConvertMany(c.Request.Context(), params.ConvertBatchParams{
			Type:     req.Type,
			Values:   values,
			FromUnit: req.FromUnit,
			ToUnit:   req.ToUnit,
		})
		for j, res := range results {
			if j >= len(positions) {
				break
			}
			item := &items[positions[j]]
			if !res.Success() {
				item.Error = res.Err.Error()
				continue
			}
			result := conversion.Round(res.Converted, resultPlaces)
			item.Success = true
			item.Result = &result
			item.Formula = res.Formula
		}
	}

	sendSuccess(c, http.StatusOK, responses.BatchConvertResponse{Success: true, Results: items})
}
