package util

import "errors"

var (
	ErrUnknownExam          = errors.New("unknown exam code")
	ErrInvalidChoice        = errors.New("invalid choice letter")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrNoQuestionsAvailable = errors.New("no questions available for exam")
	ErrProgressConflict     = errors.New("progress row modified concurrently")
)
