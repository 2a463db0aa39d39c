// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// rendered markdown depends only on its source and the width
	renderCacheExpiration = 30 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates a cache for glamour renderings of the key help
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func renderKey(name string, width int) string {
	return fmt.Sprintf("%s@%d", name, width)
}

func CacheRendered(c *cache.Cache, key string, rendered string) {
	c.Set(key, rendered, renderCacheExpiration)
}

func GetRendered(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRender returns the cached rendering of key, calling render on a miss.
// Failed renderings are not cached.
func GetOrRender(c *cache.Cache, key string, render func() (string, error)) (string, error) {
	if rendered := GetRendered(c, key); rendered != "" {
		return rendered, nil
	}
	rendered, err := render()
	if err != nil {
		return "", err
	}
	CacheRendered(c, key, rendered)
	return rendered, nil
}
