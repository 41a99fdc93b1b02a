package types

import "errors"

var (
	// ErrEmptyInput indica que nenhum texto CSV foi fornecido.
	ErrEmptyInput = errors.New("csv text is empty. Provide billing CSV contents as text")

	// ErrEmptyDataset indica que o CSV foi analisado mas não contém linhas de dados.
	ErrEmptyDataset = errors.New("parsed CSV is empty. Check the input format")

	// ErrNoCostColumn indica que nenhuma coluna de custo foi identificada.
	ErrNoCostColumn = errors.New("no cost column found. Expected a column containing 'cost' in its name")

	// ErrInvalidArgument indica que uma pré-condição numérica foi violada.
	ErrInvalidArgument = errors.New("invalid argument")
)
