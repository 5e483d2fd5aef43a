package service

import (
	"strings"
	"sync"

	"exam_coach_backend/internal/config"
)

// PolicyTable resolves exam codes to their policy (question count, time
// limit, passing percentage). Built from configuration so new exams are data
// changes; Replace supports config hot reload.
type PolicyTable struct {
	mu     sync.RWMutex
	byCode map[string]config.ExamPolicy
}

func NewPolicyTable(policies []config.ExamPolicy) *PolicyTable {
	t := &PolicyTable{}
	t.Replace(policies)
	return t
}

func (t *PolicyTable) Replace(policies []config.ExamPolicy) {
	byCode := make(map[string]config.ExamPolicy, len(policies))
	for _, p := range policies {
		p.Code = strings.ToUpper(p.Code)
		byCode[p.Code] = p
	}

	t.mu.Lock()
	t.byCode = byCode
	t.mu.Unlock()
}

// Resolve normalizes a client-supplied code (case-insensitive, "SERIES7"
// accepted for "SERIES_7") and returns the canonical code with its policy.
func (t *PolicyTable) Resolve(code string) (string, config.ExamPolicy, bool) {
	normalized := NormalizeExamCode(code)

	t.mu.RLock()
	policy, ok := t.byCode[normalized]
	t.mu.RUnlock()

	return normalized, policy, ok
}

func (t *PolicyTable) All() []config.ExamPolicy {
	t.mu.RLock()
	defer t.mu.RUnlock()

	policies := make([]config.ExamPolicy, 0, len(t.byCode))
	for _, p := range t.byCode {
		policies = append(policies, p)
	}
	return policies
}

func NormalizeExamCode(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if strings.HasPrefix(normalized, "SERIES") && !strings.HasPrefix(normalized, "SERIES_") {
		normalized = "SERIES_" + strings.TrimPrefix(normalized, "SERIES")
	}
	return normalized
}
