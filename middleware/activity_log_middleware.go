package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// ActivityRecorder persists audit entries.
type ActivityRecorder interface {
	Record(ctx context.Context, entry *models.ActivityLog) error
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

const (
	activityResourceID   = "activityResourceID"
	activityResourceName = "activityResourceName"
	activityBefore       = "activityBeforeObject"
	activityAfter        = "activityAfterObject"
)

// SetActivityResource lets a handler describe the resource it touched.
// before and after may be nil.
func SetActivityResource(c *gin.Context, id, name string, before, after any) {
	c.Set(activityResourceID, id)
	c.Set(activityResourceName, name)
	c.Set(activityBefore, before)
	c.Set(activityAfter, after)
}

// ActivityLogging records every mutating request on resourceType once the
// handler has run. Must be used after RequireSession.
func ActivityLogging(recorder ActivityRecorder, resourceType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, mutating := methodToActionVerb[c.Request.Method]
		if !mutating || recorder == nil {
			c.Next()
			return
		}

		c.Next()

		sess, ok := GetSession(c)
		if !ok {
			config.Log.Warn("[activity-logging] session not in context")
			return
		}

		entry := &models.ActivityLog{
			ActorID:      sess.UserID,
			ActorEmail:   sess.Email,
			ActorRole:    sess.Role,
			Action:       verb + "_" + resourceType,
			ResourceType: resourceType,
			ResourceID:   c.GetString(activityResourceID),
			ResourceName: c.GetString(activityResourceName),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.GetHeader("User-Agent"),
		}
		if entry.ResourceID == "" {
			entry.ResourceID = c.Param("id")
		}

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			before, _ := c.Get(activityBefore)
			after, _ := c.Get(activityAfter)
			entry.Status = models.StatusSuccess
			entry.Changes = models.ActivityChanges{Before: toMap(before), After: toMap(after)}.JSON()
		} else {
			entry.Status = models.StatusFailed
			entry.ErrorMessage = "Request failed with status " + http.StatusText(status)
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := recorder.Record(ctx, entry); err != nil {
			config.Log.Errorw("[activity-logging] failed to record", "action", entry.Action, "error", err)
			return
		}
		config.Log.Infow("[activity-logging] recorded", "action", entry.Action, "status", entry.Status, "actor", sess.Email)
	}
}

// toMap flattens a resource into its JSON field map.
func toMap(obj any) map[string]any {
	if obj == nil {
		return nil
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
