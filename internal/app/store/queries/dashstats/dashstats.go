// internal/app/store/queries/dashstats/dashstats.go
package dashstats

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Row is one day in the merged dashboard timeline.
type Row struct {
	Date      string `json:"date"`
	NewUsers  int64  `json:"newUsers"`
	NewGroups int64  `json:"newGroups"`
}

// Timeline computes the per-day dashboard series: users grouped by
// account-creation date, groups grouped by their event's scheduled
// date, left-outer-joined into one ascending timeline. A date present
// in only one series still appears, with the other side zeroed.
func Timeline(ctx context.Context, db *mongo.Database) ([]Row, error) {
	users, err := usersPerDay(ctx, db)
	if err != nil {
		return nil, err
	}
	groups, err := groupsPerDay(ctx, db)
	if err != nil {
		return nil, err
	}
	return Merge(users, groups), nil
}

// Merge left-outer-joins the two per-day series, keyed by YYYY-MM-DD
// date string, defaulting the missing side to zero and sorting
// ascending lexicographically (chronological for this format).
func Merge(usersPerDay, groupsPerDay map[string]int64) []Row {
	dates := make(map[string]struct{}, len(usersPerDay)+len(groupsPerDay))
	for d := range usersPerDay {
		dates[d] = struct{}{}
	}
	for d := range groupsPerDay {
		dates[d] = struct{}{}
	}

	rows := make([]Row, 0, len(dates))
	for d := range dates {
		rows = append(rows, Row{
			Date:      d,
			NewUsers:  usersPerDay[d],
			NewGroups: groupsPerDay[d],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

func usersPerDay(ctx context.Context, db *mongo.Database) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$createdAt",
			}},
			"n": bson.M{"$sum": 1},
		}},
	}
	return countsByDay(ctx, db.Collection("users"), pipeline)
}

func groupsPerDay(ctx context.Context, db *mongo.Database) (map[string]int64, error) {
	// formattedDate is already a YYYY-MM-DD string on the document.
	pipeline := []bson.M{
		{"$match": bson.M{"formattedDate": bson.M{"$nin": bson.A{nil, ""}}}},
		{"$group": bson.M{
			"_id": "$formattedDate",
			"n":   bson.M{"$sum": 1},
		}},
	}
	return countsByDay(ctx, db.Collection("groups"), pipeline)
}

func countsByDay(ctx context.Context, c *mongo.Collection, pipeline []bson.M) (map[string]int64, error) {
	cur, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := map[string]int64{}
	for cur.Next(ctx) {
		var row struct {
			Date string `bson:"_id"`
			N    int64  `bson:"n"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.Date] = row.N
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
