package fatsecret

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns an authenticated client pointed at a mock API server
// along with a counter of requests the server received.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("key", "secret", zerolog.Nop(),
		WithAccessToken("tok", "sec"),
		WithAPIURL(server.URL))
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client, &calls
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		key     string
		secret  string
		opts    []Option
		wantErr error
	}{
		{
			name:   "valid public client",
			key:    "key",
			secret: "secret",
		},
		{
			name:   "valid resumed session",
			key:    "key",
			secret: "secret",
			opts:   []Option{WithAccessToken("tok", "sec")},
		},
		{
			name:    "missing consumer key",
			key:     "",
			secret:  "secret",
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "missing consumer secret",
			key:     "key",
			secret:  "",
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "token without secret",
			key:     "key",
			secret:  "secret",
			opts:    []Option{WithAccessToken("tok", "")},
			wantErr: ErrPartialToken,
		},
		{
			name:    "secret without token",
			key:     "key",
			secret:  "secret",
			opts:    []Option{WithAccessToken("", "sec")},
			wantErr: ErrPartialToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.key, tt.secret, logger, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClientResumedSessionIsAuthenticated(t *testing.T) {
	// Construction must not touch the network, so no server is needed.
	client, err := NewClient("key", "secret", zerolog.Nop(), WithAccessToken("tok", "sec"))
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, client.Authenticated())
}

func TestNewClientPublicSessionIsUnauthenticated(t *testing.T) {
	client, err := NewClient("key", "secret", zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	assert.False(t, client.Authenticated())
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("key", "secret", zerolog.Nop(), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with http client", func(t *testing.T) {
		var hit atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit.Add(1)
			writeJSON(w, `{"success": 1}`)
		}))
		defer server.Close()

		base := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("key", "secret", zerolog.Nop(),
			WithHTTPClient(base),
			WithAPIURL(server.URL))
		require.NoError(t, err)

		records, err := client.FoodsGetFavorites(context.Background())
		require.NoError(t, err)
		assert.Nil(t, records)
		assert.EqualValues(t, 1, hit.Load())
	})
}

func TestFoodsSearchParams(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(w, `{"foods": {"food": [{"food_id": "1", "food_name": "Oats"}]}}`)
	})

	results, err := client.FoodsSearch(context.Background(), "oats", 4, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Oats", results[0].String("food_name"))

	assert.Equal(t, "foods.search", got.Get("method"))
	assert.Equal(t, "json", got.Get("format"))
	assert.Equal(t, "oats", got.Get("search_expression"))
	assert.Equal(t, "4", got.Get("page_number"))
	assert.Equal(t, "10", got.Get("max_results"))
}

func TestFoodsSearchPaginationPairEnforced(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(w, `{"foods": {"food": []}}`)
	})

	_, err := client.FoodsSearch(context.Background(), "oats", 4, 0)
	require.NoError(t, err)
	assert.False(t, got.Has("page_number"))
	assert.False(t, got.Has("max_results"))
}

func TestFoodsSearchCollapsedSingleResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"foods": {"food": {"food_id": "1", "food_name": "Oats"}}}`)
	})

	results, err := client.FoodsSearch(context.Background(), "oats", 0, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Oats", results[0].String("food_name"))
}

func TestFoodAddFavoriteServingPairEnforced(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(w, `{"success": 1}`)
	})

	t.Run("only serving id", func(t *testing.T) {
		ok, err := client.FoodAddFavorite(context.Background(), "111", "222", 0)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "111", got.Get("food_id"))
		assert.False(t, got.Has("serving_id"))
		assert.False(t, got.Has("number_of_units"))
	})

	t.Run("complete pair", func(t *testing.T) {
		ok, err := client.FoodAddFavorite(context.Background(), "111", "222", 1.5)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "222", got.Get("serving_id"))
		assert.Equal(t, "1.5", got.Get("number_of_units"))
	})
}

func TestFoodsGetMostEatenDropsInvalidMeal(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(w, `{"foods": {"food": []}}`)
	})

	_, err := client.FoodsGetMostEaten(context.Background(), Meal("brunch"))
	require.NoError(t, err)
	assert.False(t, got.Has("meal"))

	_, err = client.FoodsGetMostEaten(context.Background(), MealLunch)
	require.NoError(t, err)
	assert.Equal(t, "lunch", got.Get("meal"))
}

func TestFoodEntriesGetSelectors(t *testing.T) {
	var got url.Values
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(w, `{"food_entries": {"food_entry": []}}`)
	})

	t.Run("no selector skips the call", func(t *testing.T) {
		results, err := client.FoodEntriesGet(context.Background(), "", time.Time{})
		require.NoError(t, err)
		assert.Nil(t, results)
		assert.EqualValues(t, 0, calls.Load())
	})

	t.Run("entry id takes precedence", func(t *testing.T) {
		_, err := client.FoodEntriesGet(context.Background(), "999", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "999", got.Get("food_entry_id"))
		assert.False(t, got.Has("date"))
	})

	t.Run("by date", func(t *testing.T) {
		_, err := client.FoodEntriesGet(context.Background(), "", time.Date(1970, 1, 4, 18, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "3", got.Get("date"))
		assert.False(t, got.Has("food_entry_id"))
	})
}

func TestExerciseEntryEditCustomActivityRules(t *testing.T) {
	var got url.Values
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(w, `{"success": 1}`)
	})
	ctx := context.Background()

	t.Run("custom target without name skips the call", func(t *testing.T) {
		ok, err := client.ExerciseEntryEdit(ctx, ExerciseShift{ToID: OtherExercise, FromID: 5, Minutes: 30})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.EqualValues(t, 0, calls.Load())
	})

	t.Run("custom source without name skips the call", func(t *testing.T) {
		ok, err := client.ExerciseEntryEdit(ctx, ExerciseShift{ToID: 3, FromID: OtherExercise, Minutes: 30})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.EqualValues(t, 0, calls.Load())
	})

	t.Run("custom target with kcals", func(t *testing.T) {
		ok, err := client.ExerciseEntryEdit(ctx, ExerciseShift{ToID: OtherExercise, FromID: 5, Minutes: 30, Kcals: 200})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "200", got.Get("kcals"))
		assert.False(t, got.Has("shift_to_name"))
	})

	t.Run("both custom with names", func(t *testing.T) {
		ok, err := client.ExerciseEntryEdit(ctx, ExerciseShift{
			ToID:     OtherExercise,
			FromID:   OtherExercise,
			Minutes:  15,
			ToName:   "Climbing",
			FromName: "Resting",
		})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "0", got.Get("shift_to_id"))
		assert.Equal(t, "0", got.Get("shift_from_id"))
		assert.Equal(t, "15", got.Get("minutes"))
		assert.Equal(t, "Climbing", got.Get("shift_to_name"))
		assert.Equal(t, "Resting", got.Get("shift_from_name"))
	})
}

func TestAPIErrorPropagation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"error": {"code": 106, "message": "Invalid ID: food_id"}}`)
	})

	_, err := client.FoodGet(context.Background(), "bogus")
	require.Error(t, err)

	apiErr := &APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindParameter, apiErr.Kind)
	assert.Equal(t, 106, apiErr.Code)
}

func TestCallRejectsNon200(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FoodGet(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestProfileGetAuth(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"profile": {"auth_token": "T", "auth_secret": "S"}}`)
	})

	pair, err := client.ProfileGetAuth(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, TokenPair{Token: "T", Secret: "S"}, pair)
}

func TestSavedMealCreateParams(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(w, `{"saved_meal_id": {"value": "777"}}`)
	})

	result, err := client.SavedMealCreate(context.Background(), "Porridge", "", []Meal{MealBreakfast, MealOther})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"value": "777"}, result)

	assert.Equal(t, "saved_meal.create", got.Get("method"))
	assert.Equal(t, "Porridge", got.Get("saved_meal_name"))
	assert.False(t, got.Has("saved_meal_description"))
	assert.Equal(t, "breakfast,other", got.Get("meals"))
}

func TestWeightUpdateDefaults(t *testing.T) {
	var got url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(w, `{"success": 1}`)
	})

	ok, err := client.WeightUpdate(context.Background(), 72.5, WeightOptions{Comment: "after run"})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "72.5", got.Get("current_weight_kg"))
	assert.Equal(t, "kg", got.Get("weight_type"))
	assert.Equal(t, "cm", got.Get("height_type"))
	assert.Equal(t, "after run", got.Get("comment"))
	assert.False(t, got.Has("goal_weight_kg"))
	assert.False(t, got.Has("date"))
}

func TestRequestIsSigned(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		assert.Contains(t, auth, "oauth_consumer_key")
		assert.Contains(t, auth, "oauth_signature")
		writeJSON(w, `{"success": 1}`)
	})

	_, err := client.FoodsGetFavorites(context.Background())
	require.NoError(t, err)
}
