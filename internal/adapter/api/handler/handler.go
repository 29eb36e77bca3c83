package handler

import (
	"ghargpt/internal/usecase"
)

var (
	propertyHandler *PropertyHandler
)

func Setup(propertyUseCase *usecase.PropertyUseCase) {
	propertyHandler = NewPropertyHandler(propertyUseCase)
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}
