// Package auth
// 模块名: http认证
// 功能描述: basic auth中间件
// 作者:  yr  2024/1/16 0016 10:30
// 最后更新:  yr  2025/7/18
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const realm = `Basic realm="Restricted Content"`

func BasicAuth(accountMap map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := parseBasic(c.GetHeader("Authorization"))
		if !ok {
			c.Header("WWW-Authenticate", realm)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		pwd, exists := accountMap[user[0]]
		if !exists || subtle.ConstantTimeCompare([]byte(pwd), []byte(user[1])) != 1 {
			c.Header("WWW-Authenticate", realm)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// 认证成功，继续执行下一个中间件或路由处理函数
		c.Set(gin.AuthUserKey, user[0])
		c.Next()
	}
}

// parseBasic 解析 "Basic base64(user:password)"
func parseBasic(header string) ([2]string, bool) {
	auth := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(auth) != 2 || auth[0] != "Basic" {
		return [2]string{}, false
	}
	payload, err := base64.StdEncoding.DecodeString(auth[1])
	if err != nil {
		return [2]string{}, false
	}
	pair := strings.SplitN(string(payload), ":", 2)
	if len(pair) != 2 {
		return [2]string{}, false
	}
	return [2]string{pair[0], pair[1]}, true
}
