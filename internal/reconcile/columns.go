// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

// Column labels of the OA hazard export.
const (
	ColMainProcessNumber     = "主流程单号"
	ColDocumentNumber        = "单据编号："
	ColInitiator             = "创建人"
	ColInspectionDate        = "检查日期"
	ColFactoryArea           = "隐患所属厂区"
	ColHazardType            = "隐患类型"
	ColLocation              = "隐患所属位置"
	ColDescription           = "隐患描述及整改建议"
	ColResponsibleDepartment = "整改责任部门"
	ColChangedResponsible    = "变更整改责任人"
	ColResponsiblePerson     = "整改责任人"
	ColDeadline              = "整改期限"
	ColExtendedDeadline      = "整改延期至"
	ColRectificationDeadline = "隐患整改期限"
	ColProgress              = "当前节点"
	ColUnactioned            = "未操作者"
	ColCompletionDate        = "归档日期"
	ColDeductPoints          = "是否扣分"
)

// Column labels of the personnel roster.
const (
	ColName       = "姓名"
	ColDepartment = "部门"
	ColStartDate  = "开始日期"
	ColEndDate    = "结束日期"
)

// Yes is the literal marker the export uses for a true flag.
const Yes = "是"
