package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 表示无效实体
type EntityID uint64

// componentSet 一个实体挂载的全部组件，按组件的动态类型索引
type componentSet map[reflect.Type]any

func (cs componentSet) has(types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := cs[t]; !ok {
			return false
		}
	}
	return true
}

// EntityManager 保存一局中的所有实体
//
// 棋子、袋口和震动效果都是实体。查询按 EntityID 升序返回，
// 物理与碰撞系统依赖这个顺序得到可复现的结果。
type EntityManager struct {
	lastID   EntityID
	entities map[EntityID]componentSet
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{
		entities: make(map[EntityID]componentSet),
	}
}

// CreateEntity 创建新实体，ID 从 1 开始递增且不复用
func (em *EntityManager) CreateEntity() EntityID {
	em.lastID++
	em.entities[em.lastID] = make(componentSet)
	return em.lastID
}

// Clear 立即删除全部实体（重新摆盘）
func (em *EntityManager) Clear() {
	clear(em.entities)
}

// AddComponent 挂载组件，同类型组件会被替换
// 未知实体忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	em.put(id, reflect.TypeOf(component), component)
}

func (em *EntityManager) put(id EntityID, t reflect.Type, component any) {
	if cs, ok := em.entities[id]; ok {
		cs[t] = component
	}
}

// RemoveComponent 卸载指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	delete(em.entities[id], componentType)
}

// GetComponent 按类型取组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.entities[id][componentType]
	return comp, ok
}

// HasComponent 实体是否挂载了指定类型的组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.entities[id][componentType]
	return ok
}

// EntityExists 实体是否存在（未被删除）
func (em *EntityManager) EntityExists(id EntityID) bool {
	_, ok := em.entities[id]
	return ok
}

// EntityCount 当前实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.entities)
}

// GetEntitiesWith 返回同时挂载了全部指定组件类型的实体，按ID升序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var ids []EntityID
	for id, cs := range em.entities {
		if cs.has(componentTypes) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
