package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/Lzww0608/tuuid"
)

const (
	// ZKRootPath is the root path in Zookeeper for node-identity registration.
	ZKRootPath = "/tuuid_nodes"

	nodeMask = 1<<48 - 1
)

// NodeCoordinator assigns this process a stable 48-bit node identifier
// through Zookeeper so that distributed version 1 generators never share a
// node field. RFC 4122 uniqueness for v1 rests on node identity; two
// processes emitting the same node value can collide the moment their
// clocks agree.
type NodeCoordinator struct {
	zkClient *zk.Conn
	service  string
	port     int

	nodeID int64 // assigned 48-bit node value
	gen    *tuuid.Generator
}

// NodeInfo represents info stored for each worker in both ZK and cache file.
type NodeInfo struct {
	LastTime   int64 `json:"last_time"`   // Last timestamp this node was active
	CreateTime int64 `json:"create_time"` // Creation timestamp
	NodeID     int64 `json:"node_id"`     // Assigned 48-bit node identifier
}

// NewNodeCoordinator connects to Zookeeper, recovers or registers this
// process's node identity, and pins it on a fresh generator.
func NewNodeCoordinator(zkServers []string, serviceName string, port int) (*NodeCoordinator, error) {
	c := &NodeCoordinator{
		service: serviceName,
		port:    port,
		gen:     tuuid.NewGenerator(),
	}

	conn, _, err := zk.Connect(zkServers, time.Second*5)
	if err != nil {
		return nil, fmt.Errorf("connect zk failed: %v", err)
	}
	c.zkClient = conn

	nodeID, err := c.registerOrRecover()
	if err != nil {
		return nil, err
	}

	c.nodeID = nodeID
	if err := c.gen.SetNode(uint64(nodeID)); err != nil {
		return nil, err
	}
	log.Printf("node coordinator initialized with nodeID: %012x", nodeID)

	// Periodically upload heartbeat and update state to Zookeeper and cache
	go c.scheduledUploadTime()
	return c, nil
}

// registerOrRecover registers this node to Zookeeper or recovers its
// assignment from the local cache or ZK.
func (c *NodeCoordinator) registerOrRecover() (int64, error) {
	servicePath := fmt.Sprintf("%s/%s", ZKRootPath, c.service)
	c.ensurePath(ZKRootPath)
	c.ensurePath(servicePath)

	nodeKey := fmt.Sprintf("%s/node-%d", servicePath, c.port)

	var myNodeInfo NodeInfo
	var nodeID int64

	exists, _, err := c.zkClient.Exists(nodeKey)
	if err != nil {
		return 0, fmt.Errorf("check node existence failed: %v", err)
	}

	if exists {
		data, _, err := c.zkClient.Get(nodeKey)
		if err != nil {
			return 0, fmt.Errorf("get node info failed: %v", err)
		}
		json.Unmarshal(data, &myNodeInfo)
		nodeID = myNodeInfo.NodeID

		currentTime := time.Now().UnixMilli()
		// A rolled-back clock would replay timestamps already issued under
		// this node identity; refuse to come up until it catches back up.
		if currentTime < myNodeInfo.LastTime {
			return 0, fmt.Errorf("clock moved backwards: %d < %d", currentTime, myNodeInfo.LastTime)
		}

		log.Printf("recover nodeID: %012x from zk", nodeID)
	} else {
		cachedNode, err := c.loadLocalCache()
		if err == nil {
			nodeID = cachedNode.NodeID
			if time.Now().UnixMilli() < cachedNode.LastTime {
				return 0, fmt.Errorf("clock moved backwards: %d < %d", time.Now().UnixMilli(), cachedNode.LastTime)
			}
			log.Printf("recover nodeID: %012x from local cache", nodeID)
		} else {
			// First registration: draw a fresh 48-bit value. SetNode forces
			// the multicast bit so it can never collide with a real MAC.
			nodeID = rand.Int63() & nodeMask
		}

		now := time.Now().UnixMilli()
		myNodeInfo = NodeInfo{
			NodeID:     nodeID,
			LastTime:   now,
			CreateTime: now,
		}
	}

	bytes, _ := json.Marshal(myNodeInfo)
	if exists {
		_, err = c.zkClient.Set(nodeKey, bytes, -1)
	} else {
		_, err = c.zkClient.Create(nodeKey, bytes, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return 0, fmt.Errorf("register or update node info failed: %v", err)
	}

	c.saveLocalCache(myNodeInfo)
	return nodeID, nil
}

// NextID generates the next version 1 UUID under the coordinated node
// identity.
func (c *NodeCoordinator) NextID() (tuuid.UUID, error) {
	return c.gen.New()
}

// scheduledUploadTime periodically updates this node's info in Zookeeper
// and the local cache.
func (c *NodeCoordinator) scheduledUploadTime() {
	ticker := time.NewTicker(3 * time.Second)
	nodeKey := fmt.Sprintf("%s/%s/node-%d", ZKRootPath, c.service, c.port)

	for range ticker.C {
		now := time.Now().UnixMilli()

		info := NodeInfo{
			NodeID:   c.nodeID,
			LastTime: now,
		}
		data, _ := json.Marshal(info)

		// Ignore errors, since Zookeeper may occasionally be unavailable
		c.zkClient.Set(nodeKey, data, -1)

		c.saveLocalCache(info)
	}
}

// ensurePath creates a ZK path if needed.
func (c *NodeCoordinator) ensurePath(path string) {
	exists, _, _ := c.zkClient.Exists(path)
	if !exists {
		c.zkClient.Create(path, []byte{}, 0, zk.WorldACL(zk.PermAll))
	}
}

// saveLocalCache saves the given NodeInfo to a file for local state recovery.
func (c *NodeCoordinator) saveLocalCache(info NodeInfo) {
	data, _ := json.Marshal(info)
	fileName := fmt.Sprintf(".tuuid_node_%d", c.port)
	os.WriteFile(fileName, data, 0644)
}

// loadLocalCache loads NodeInfo from the local cache file, if present.
func (c *NodeCoordinator) loadLocalCache() (NodeInfo, error) {
	fileName := fmt.Sprintf(".tuuid_node_%d", c.port)
	data, err := os.ReadFile(fileName)
	if err != nil {
		return NodeInfo{}, err
	}
	var info NodeInfo
	json.Unmarshal(data, &info)
	return info, nil
}

func main() {
	// NOTE: This code requires a local Zookeeper at localhost:2181 to run.
	// You can use Docker to start Zookeeper for local testing:
	// docker run --name some-zookeeper -p 2181:2181 -d zookeeper

	zkServers := []string{"127.0.0.1:2181"}

	coordinator, err := NewNodeCoordinator(zkServers, "order-service", 8080)
	if err != nil {
		log.Fatalf("Failed to init node coordinator: %v", err)
	}

	log.Println("Start generating IDs...")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id, err := coordinator.NextID()
				if err != nil {
					log.Println(err)
				} else {
					fmt.Println(id)
				}
			}
		}()
	}
	wg.Wait()
	log.Println("Done.")
}
