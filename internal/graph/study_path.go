package graph

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// StepNode 学习步骤节点结构
type StepNode struct {
	PlanID    int       `json:"plan_id"`
	Position  int       `json:"position"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// StudyPathService 学习路径图服务
// 把学习计划的步骤镜像为 (:Step)-[:NEXT]-> 链
type StudyPathService struct {
	client *Neo4jClient
}

// NewStudyPathService 创建学习路径图服务
func NewStudyPathService(client *Neo4jClient) *StudyPathService {
	return &StudyPathService{
		client: client,
	}
}

// 匹配markdown编号列表项，如 "1. **标题**" 或 "2) 标题"
var stepLineRe = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+(.+?)\s*$`)

// ExtractPlanSteps 从计划markdown中提取编号步骤标题
// 去掉markdown强调和标题标记，只保留标题文本
func ExtractPlanSteps(markdown string) []string {
	matches := stepLineRe.FindAllStringSubmatch(markdown, -1)
	steps := make([]string, 0, len(matches))
	for _, m := range matches {
		title := strings.TrimSpace(m[1])
		title = strings.Trim(title, "*#")
		title = strings.TrimSpace(title)
		// 步骤行常形如 "**标题** - 说明"，只取标题部分
		if idx := strings.Index(title, " - "); idx > 0 {
			title = strings.TrimSpace(title[:idx])
			title = strings.Trim(title, "*")
		}
		if title != "" {
			steps = append(steps, title)
		}
	}
	return steps
}

// SyncPlanPath 把计划步骤写入图数据库
// 先清掉旧链再按顺序MERGE，步骤间建立NEXT关系
func (s *StudyPathService) SyncPlanPath(ctx context.Context, planID int, steps []string) error {
	if err := s.DeletePlanPath(ctx, planID); err != nil {
		return err
	}
	if len(steps) == 0 {
		return nil
	}

	_, err := s.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		for i, title := range steps {
			query := `
				MERGE (s:Step {plan_id: $plan_id, position: $position})
				SET s.title = $title, s.created_at = datetime()
			`
			if _, err := tx.Run(ctx, query, map[string]interface{}{
				"plan_id":  planID,
				"position": i + 1,
				"title":    title,
			}); err != nil {
				return nil, err
			}

			if i == 0 {
				continue
			}
			linkQuery := `
				MATCH (prev:Step {plan_id: $plan_id, position: $prev_position})
				MATCH (cur:Step {plan_id: $plan_id, position: $position})
				MERGE (prev)-[:NEXT]->(cur)
			`
			if _, err := tx.Run(ctx, linkQuery, map[string]interface{}{
				"plan_id":       planID,
				"prev_position": i,
				"position":      i + 1,
			}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("写入学习路径失败: %w", err)
	}
	return nil
}

// GetPlanPath 按顺序读取计划的步骤链
func (s *StudyPathService) GetPlanPath(ctx context.Context, planID int) ([]StepNode, error) {
	query := `
		MATCH (s:Step {plan_id: $plan_id})
		RETURN s.plan_id as plan_id,
			   s.position as position,
			   s.title as title
		ORDER BY s.position
	`

	result, err := s.client.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		result, err := tx.Run(ctx, query, map[string]interface{}{
			"plan_id": planID,
		})
		if err != nil {
			return nil, err
		}

		var steps []StepNode
		for result.Next(ctx) {
			record := result.Record()
			step := StepNode{
				PlanID:   int(record.Values[0].(int64)),
				Position: int(record.Values[1].(int64)),
				Title:    record.Values[2].(string),
			}
			steps = append(steps, step)
		}
		return steps, result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("读取学习路径失败: %w", err)
	}
	return result.([]StepNode), nil
}

// DeletePlanPath 删除计划对应的步骤链
func (s *StudyPathService) DeletePlanPath(ctx context.Context, planID int) error {
	_, err := s.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (s:Step {plan_id: $plan_id})
			DETACH DELETE s
		`
		_, err := tx.Run(ctx, query, map[string]interface{}{
			"plan_id": planID,
		})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("删除学习路径失败: %w", err)
	}
	return nil
}
