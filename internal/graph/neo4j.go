package graph

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jClient Neo4j客户端
type Neo4jClient struct {
	driver neo4j.DriverWithContext
	config Neo4jConfig
}

// NewNeo4jClient 创建新的Neo4j客户端
func NewNeo4jClient(config Neo4jConfig) (*Neo4jClient, error) {
	driver, err := neo4j.NewDriverWithContext(
		config.URI,
		neo4j.BasicAuth(config.Username, config.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	client := &Neo4jClient{
		driver: driver,
		config: config,
	}

	// 测试连接
	if err := client.TestConnection(); err != nil {
		return nil, fmt.Errorf("failed to connect to Neo4j: %w", err)
	}

	// 创建索引和约束
	if err := client.createConstraints(); err != nil {
		log.Printf("Warning: failed to create constraints: %v", err)
	}

	return client, nil
}

// TestConnection 测试数据库连接
func (c *Neo4jClient) TestConnection() error {
	ctx := context.Background()
	return c.driver.VerifyConnectivity(ctx)
}

// Close 关闭连接
func (c *Neo4jClient) Close() error {
	ctx := context.Background()
	return c.driver.Close(ctx)
}

// createConstraints 创建约束和索引
func (c *Neo4jClient) createConstraints() error {
	ctx := context.Background()
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.config.Database,
	})
	defer session.Close(ctx)

	// 步骤节点按 (plan_id, position) 唯一
	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := "CREATE CONSTRAINT step_plan_position_unique IF NOT EXISTS FOR (s:Step) REQUIRE (s.plan_id, s.position) IS UNIQUE"
		_, err := tx.Run(ctx, query, nil)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to create unique constraint: %w", err)
	}

	// 计划id索引
	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := "CREATE INDEX step_plan_id_index IF NOT EXISTS FOR (s:Step) ON (s.plan_id)"
		_, err := tx.Run(ctx, query, nil)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	return nil
}

// ExecuteWrite 执行写操作
func (c *Neo4jClient) ExecuteWrite(ctx context.Context, work neo4j.ManagedTransactionWork) (interface{}, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.config.Database,
	})
	defer session.Close(ctx)

	return session.ExecuteWrite(ctx, work)
}

// ExecuteRead 执行读操作
func (c *Neo4jClient) ExecuteRead(ctx context.Context, work neo4j.ManagedTransactionWork) (interface{}, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.config.Database,
	})
	defer session.Close(ctx)

	return session.ExecuteRead(ctx, work)
}
