package controllers

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/greenroute/pkg"
	"github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/http/usecases"
	"github.com/lintang-b-s/greenroute/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatchResponse(t *testing.T) {
	plan := &datastructure.RoutePlan{
		Eco:   &datastructure.Route{Objective: pkg.ECO_OBJECTIVE, Path: []string{"A", "B"}, Found: true},
		Safe:  &datastructure.Route{Objective: pkg.SAFE_OBJECTIVE, Path: []string{"A", "B"}, Found: true},
		Start: "A",
		End:   "B",
	}

	testCases := []struct {
		name      string
		result    usecases.BatchResult
		wantError string
		wantPlan  bool
	}{
		{
			name:     "planned",
			result:   usecases.BatchResult{Plan: plan},
			wantPlan: true,
		},
		{
			name: "internal failure hides its cause",
			result: usecases.BatchResult{Err: util.WrapErrorf(errors.New("dial tcp 10.0.0.7:5432: connection refused"),
				util.ErrInternalServerError, "%s", util.MessageInternalServerError)},
			wantError: util.MessageInternalServerError,
		},
		{
			name:      "unwrapped failure counts as internal",
			result:    usecases.BatchResult{Err: errors.New("nil pointer somewhere")},
			wantError: util.MessageInternalServerError,
		},
		{
			name:      "bad param keeps its message",
			result:    usecases.BatchResult{Err: util.WrapErrorf(nil, util.ErrBadParamInput, "no campus node within search radius")},
			wantError: "no campus node within search radius",
		},
	}

	results := make([]usecases.BatchResult, len(testCases))
	for i, tt := range testCases {
		results[i] = tt.result
	}
	resp := NewBatchResponse(results)
	require.Len(t, resp, len(testCases))

	for i, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, i, resp[i].Index)
			assert.Equal(t, tt.wantError, resp[i].Error)
			if tt.wantPlan {
				require.NotNil(t, resp[i].Plan)
				assert.Equal(t, []string{"A", "B"}, resp[i].Plan.EcoRoute.Path)
				assert.True(t, resp[i].Plan.SafeRoute.Found)
			} else {
				assert.Nil(t, resp[i].Plan)
			}
		})
	}
}
