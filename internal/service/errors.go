package service

import "errors"

var (
	// ErrScopeNotFound - клиент или шаблон не зарегистрирован.
	ErrScopeNotFound = errors.New("scope not found")
	// ErrInvalidInput - некорректные данные запроса (пустой slug, имя и т.п.).
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists - scope с таким slug/именем уже есть.
	ErrAlreadyExists = errors.New("already exists")
)
