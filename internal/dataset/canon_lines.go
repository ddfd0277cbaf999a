package dataset

// #region imports
import (
	"github.com/mingshu-dev/yaocast/internal/fortune"
)

// #endregion

// #region corpus

const (
	ji    = fortune.Auspicious
	zhong = fortune.Neutral
	xiong = fortune.Inauspicious
)

// canonLines is the received text of all 384 lines with curated labels.
// Labels follow the traditional reading of the whole line, not just its
// surface markers; Validate cross-checks every designation against the
// canonical hexagram structure.
var canonLines = []Line{
	// 1 乾
	{1, 1, "初九：潛龍勿用。", zhong},
	{1, 2, "九二：見龍在田，利見大人。", ji},
	{1, 3, "九三：君子終日乾乾，夕惕若，厲无咎。", zhong},
	{1, 4, "九四：或躍在淵，无咎。", zhong},
	{1, 5, "九五：飛龍在天，利見大人。", ji},
	{1, 6, "上九：亢龍有悔。", xiong},
	// 2 坤
	{2, 1, "初六：履霜，堅冰至。", xiong},
	{2, 2, "六二：直方大，不習无不利。", ji},
	{2, 3, "六三：含章可貞，或從王事，无成有終。", zhong},
	{2, 4, "六四：括囊，无咎无譽。", zhong},
	{2, 5, "六五：黃裳，元吉。", ji},
	{2, 6, "上六：龍戰于野，其血玄黃。", xiong},
	// 3 屯
	{3, 1, "初九：磐桓，利居貞，利建侯。", zhong},
	{3, 2, "六二：屯如邅如，乘馬班如，匪寇婚媾，女子貞不字，十年乃字。", zhong},
	{3, 3, "六三：即鹿无虞，惟入于林中，君子幾不如舍，往吝。", xiong},
	{3, 4, "六四：乘馬班如，求婚媾，往吉，无不利。", ji},
	{3, 5, "九五：屯其膏，小貞吉，大貞凶。", zhong},
	{3, 6, "上六：乘馬班如，泣血漣如。", xiong},
	// 4 蒙
	{4, 1, "初六：發蒙，利用刑人，用說桎梏，以往吝。", zhong},
	{4, 2, "九二：包蒙吉，納婦吉，子克家。", ji},
	{4, 3, "六三：勿用取女，見金夫，不有躬，无攸利。", xiong},
	{4, 4, "六四：困蒙，吝。", xiong},
	{4, 5, "六五：童蒙，吉。", ji},
	{4, 6, "上九：擊蒙，不利為寇，利禦寇。", zhong},
	// 5 需
	{5, 1, "初九：需于郊，利用恆，无咎。", zhong},
	{5, 2, "九二：需于沙，小有言，終吉。", zhong},
	{5, 3, "九三：需于泥，致寇至。", xiong},
	{5, 4, "六四：需于血，出自穴。", xiong},
	{5, 5, "九五：需于酒食，貞吉。", ji},
	{5, 6, "上六：入于穴，有不速之客三人來，敬之終吉。", zhong},
	// 6 訟
	{6, 1, "初六：不永所事，小有言，終吉。", zhong},
	{6, 2, "九二：不克訟，歸而逋，其邑人三百戶，无眚。", zhong},
	{6, 3, "六三：食舊德，貞厲，終吉，或從王事，无成。", zhong},
	{6, 4, "九四：不克訟，復即命，渝安貞，吉。", zhong},
	{6, 5, "九五：訟，元吉。", ji},
	{6, 6, "上九：或錫之鞶帶，終朝三褫之。", xiong},
	// 7 師
	{7, 1, "初六：師出以律，否臧凶。", xiong},
	{7, 2, "九二：在師中，吉，无咎，王三錫命。", ji},
	{7, 3, "六三：師或輿尸，凶。", xiong},
	{7, 4, "六四：師左次，无咎。", zhong},
	{7, 5, "六五：田有禽，利執言，无咎。長子帥師，弟子輿尸，貞凶。", zhong},
	{7, 6, "上六：大君有命，開國承家，小人勿用。", zhong},
	// 8 比
	{8, 1, "初六：有孚比之，无咎。有孚盈缶，終來有他吉。", ji},
	{8, 2, "六二：比之自內，貞吉。", ji},
	{8, 3, "六三：比之匪人。", xiong},
	{8, 4, "六四：外比之，貞吉。", ji},
	{8, 5, "九五：顯比，王用三驅，失前禽，邑人不誡，吉。", ji},
	{8, 6, "上六：比之无首，凶。", xiong},
	// 9 小畜
	{9, 1, "初九：復自道，何其咎，吉。", ji},
	{9, 2, "九二：牽復，吉。", ji},
	{9, 3, "九三：輿說輻，夫妻反目。", xiong},
	{9, 4, "六四：有孚，血去惕出，无咎。", zhong},
	{9, 5, "九五：有孚攣如，富以其鄰。", ji},
	{9, 6, "上九：既雨既處，尚德載，婦貞厲。月幾望，君子征凶。", xiong},
	// 10 履
	{10, 1, "初九：素履，往无咎。", zhong},
	{10, 2, "九二：履道坦坦，幽人貞吉。", ji},
	{10, 3, "六三：眇能視，跛能履，履虎尾，咥人，凶。武人為于大君。", xiong},
	{10, 4, "九四：履虎尾，愬愬終吉。", ji},
	{10, 5, "九五：夬履，貞厲。", zhong},
	{10, 6, "上九：視履考祥，其旋元吉。", ji},
	// 11 泰
	{11, 1, "初九：拔茅茹，以其彙，征吉。", ji},
	{11, 2, "九二：包荒，用馮河，不遐遺，朋亡，得尚于中行。", ji},
	{11, 3, "九三：无平不陂，无往不復，艱貞无咎，勿恤其孚，于食有福。", zhong},
	{11, 4, "六四：翩翩，不富以其鄰，不戒以孚。", zhong},
	{11, 5, "六五：帝乙歸妹，以祉元吉。", ji},
	{11, 6, "上六：城復于隍，勿用師，自邑告命，貞吝。", xiong},
	// 12 否
	{12, 1, "初六：拔茅茹，以其彙，貞吉，亨。", ji},
	{12, 2, "六二：包承，小人吉，大人否，亨。", zhong},
	{12, 3, "六三：包羞。", zhong},
	{12, 4, "九四：有命无咎，疇離祉。", zhong},
	{12, 5, "九五：休否，大人吉。其亡其亡，繫于苞桑。", ji},
	{12, 6, "上九：傾否，先否後喜。", ji},
	// 13 同人
	{13, 1, "初九：同人于門，无咎。", zhong},
	{13, 2, "六二：同人于宗，吝。", zhong},
	{13, 3, "九三：伏戎于莽，升其高陵，三歲不興。", xiong},
	{13, 4, "九四：乘其墉，弗克攻，吉。", ji},
	{13, 5, "九五：同人先號咷而後笑，大師克相遇。", ji},
	{13, 6, "上九：同人于郊，无悔。", zhong},
	// 14 大有
	{14, 1, "初九：无交害，匪咎，艱則无咎。", zhong},
	{14, 2, "九二：大車以載，有攸往，无咎。", zhong},
	{14, 3, "九三：公用亨于天子，小人弗克。", zhong},
	{14, 4, "九四：匪其彭，无咎。", zhong},
	{14, 5, "六五：厥孚交如，威如，吉。", ji},
	{14, 6, "上九：自天祐之，吉无不利。", ji},
	// 15 謙
	{15, 1, "初六：謙謙君子，用涉大川，吉。", ji},
	{15, 2, "六二：鳴謙，貞吉。", ji},
	{15, 3, "九三：勞謙，君子有終，吉。", ji},
	{15, 4, "六四：无不利，撝謙。", ji},
	{15, 5, "六五：不富以其鄰，利用侵伐，无不利。", zhong},
	{15, 6, "上六：鳴謙，利用行師，征邑國。", zhong},
	// 16 豫
	{16, 1, "初六：鳴豫，凶。", xiong},
	{16, 2, "六二：介于石，不終日，貞吉。", ji},
	{16, 3, "六三：盱豫，悔。遲有悔。", zhong},
	{16, 4, "九四：由豫，大有得，勿疑朋盍簪。", ji},
	{16, 5, "六五：貞疾，恆不死。", zhong},
	{16, 6, "上六：冥豫，成有渝，无咎。", zhong},
	// 17 隨
	{17, 1, "初九：官有渝，貞吉，出門交有功。", zhong},
	{17, 2, "六二：係小子，失丈夫。", xiong},
	{17, 3, "六三：係丈夫，失小子，隨有求得，利居貞。", zhong},
	{17, 4, "九四：隨有獲，貞凶。有孚在道，以明，何咎。", zhong},
	{17, 5, "九五：孚于嘉，吉。", ji},
	{17, 6, "上六：拘係之，乃從維之，王用亨于西山。", zhong},
	// 18 蠱
	{18, 1, "初六：幹父之蠱，有子，考无咎，厲終吉。", ji},
	{18, 2, "九二：幹母之蠱，不可貞。", zhong},
	{18, 3, "九三：幹父之蠱，小有悔，无大咎。", zhong},
	{18, 4, "六四：裕父之蠱，往見吝。", zhong},
	{18, 5, "六五：幹父之蠱，用譽。", ji},
	{18, 6, "上九：不事王侯，高尚其事。", zhong},
	// 19 臨
	{19, 1, "初九：咸臨，貞吉。", ji},
	{19, 2, "九二：咸臨，吉无不利。", ji},
	{19, 3, "六三：甘臨，无攸利。既憂之，无咎。", zhong},
	{19, 4, "六四：至臨，无咎。", zhong},
	{19, 5, "六五：知臨，大君之宜，吉。", ji},
	{19, 6, "上六：敦臨，吉无咎。", ji},
	// 20 觀
	{20, 1, "初六：童觀，小人无咎，君子吝。", zhong},
	{20, 2, "六二：闚觀，利女貞。", zhong},
	{20, 3, "六三：觀我生，進退。", zhong},
	{20, 4, "六四：觀國之光，利用賓于王。", zhong},
	{20, 5, "九五：觀我生，君子无咎。", zhong},
	{20, 6, "上九：觀其生，君子无咎。", zhong},
	// 21 噬嗑
	{21, 1, "初九：屨校滅趾，无咎。", zhong},
	{21, 2, "六二：噬膚滅鼻，无咎。", zhong},
	{21, 3, "六三：噬腊肉，遇毒，小吝，无咎。", zhong},
	{21, 4, "九四：噬乾胏，得金矢，利艱貞，吉。", ji},
	{21, 5, "六五：噬乾肉，得黃金，貞厲，无咎。", zhong},
	{21, 6, "上九：何校滅耳，凶。", xiong},
	// 22 賁
	{22, 1, "初九：賁其趾，舍車而徒。", zhong},
	{22, 2, "六二：賁其須。", zhong},
	{22, 3, "九三：賁如濡如，永貞吉。", ji},
	{22, 4, "六四：賁如皤如，白馬翰如，匪寇婚媾。", zhong},
	{22, 5, "六五：賁于丘園，束帛戔戔，吝，終吉。", ji},
	{22, 6, "上九：白賁，无咎。", zhong},
	// 23 剝
	{23, 1, "初六：剝床以足，蔑貞凶。", xiong},
	{23, 2, "六二：剝床以辨，蔑貞凶。", xiong},
	{23, 3, "六三：剝之，无咎。", zhong},
	{23, 4, "六四：剝床以膚，凶。", xiong},
	{23, 5, "六五：貫魚以宮人寵，无不利。", ji},
	{23, 6, "上九：碩果不食，君子得輿，小人剝廬。", zhong},
	// 24 復
	{24, 1, "初九：不遠復，无祗悔，元吉。", ji},
	{24, 2, "六二：休復，吉。", ji},
	{24, 3, "六三：頻復，厲无咎。", zhong},
	{24, 4, "六四：中行獨復。", zhong},
	{24, 5, "六五：敦復，无悔。", zhong},
	{24, 6, "上六：迷復，凶，有災眚。至于十年，不克征。", xiong},
	// 25 无妄
	{25, 1, "初九：无妄，往吉。", ji},
	{25, 2, "六二：不耕穫，不菑畬，則利有攸往。", ji},
	{25, 3, "六三：无妄之災，或繫之牛，行人之得，邑人之災。", xiong},
	{25, 4, "九四：可貞，无咎。", zhong},
	{25, 5, "九五：无妄之疾，勿藥有喜。", zhong},
	{25, 6, "上九：无妄，行有眚，无攸利。", xiong},
	// 26 大畜
	{26, 1, "初九：有厲，利已。", zhong},
	{26, 2, "九二：輿說輹。", zhong},
	{26, 3, "九三：良馬逐，利艱貞。曰閑輿衛，利有攸往。", ji},
	{26, 4, "六四：童牛之牿，元吉。", ji},
	{26, 5, "六五：豶豕之牙，吉。", ji},
	{26, 6, "上九：何天之衢，亨。", ji},
	// 27 頤
	{27, 1, "初九：舍爾靈龜，觀我朵頤，凶。", xiong},
	{27, 2, "六二：顛頤，拂經，于丘頤，征凶。", xiong},
	{27, 3, "六三：拂頤，貞凶，十年勿用，无攸利。", xiong},
	{27, 4, "六四：顛頤，吉。虎視眈眈，其欲逐逐，无咎。", ji},
	{27, 5, "六五：拂經，居貞吉，不可涉大川。", ji},
	{27, 6, "上九：由頤，厲吉，利涉大川。", ji},
	// 28 大過
	{28, 1, "初六：藉用白茅，无咎。", zhong},
	{28, 2, "九二：枯楊生稊，老夫得其女妻，无不利。", ji},
	{28, 3, "九三：棟橈，凶。", xiong},
	{28, 4, "九四：棟隆，吉。有它吝。", ji},
	{28, 5, "九五：枯楊生華，老婦得其士夫，无咎无譽。", zhong},
	{28, 6, "上六：過涉滅頂，凶，无咎。", xiong},
	// 29 坎
	{29, 1, "初六：習坎，入于坎窞，凶。", xiong},
	{29, 2, "九二：坎有險，求小得。", zhong},
	{29, 3, "六三：來之坎坎，險且枕，入于坎窞，勿用。", zhong},
	{29, 4, "六四：樽酒簋貳，用缶，納約自牖，終无咎。", zhong},
	{29, 5, "九五：坎不盈，祗既平，无咎。", zhong},
	{29, 6, "上六：係用徽纆，寘于叢棘，三歲不得，凶。", xiong},
	// 30 離
	{30, 1, "初九：履錯然，敬之，无咎。", zhong},
	{30, 2, "六二：黃離，元吉。", ji},
	{30, 3, "九三：日昃之離，不鼓缶而歌，則大耋之嗟，凶。", xiong},
	{30, 4, "九四：突如其來如，焚如，死如，棄如。", xiong},
	{30, 5, "六五：出涕沱若，戚嗟若，吉。", ji},
	{30, 6, "上九：王用出征，有嘉折首，獲匪其醜，无咎。", zhong},
	// 31 咸
	{31, 1, "初六：咸其拇。", zhong},
	{31, 2, "六二：咸其腓，凶，居吉。", zhong},
	{31, 3, "九三：咸其股，執其隨，往吝。", zhong},
	{31, 4, "九四：貞吉，悔亡。憧憧往來，朋從爾思。", ji},
	{31, 5, "九五：咸其脢，无悔。", zhong},
	{31, 6, "上六：咸其輔頰舌。", zhong},
	// 32 恆
	{32, 1, "初六：浚恆，貞凶，无攸利。", xiong},
	{32, 2, "九二：悔亡。", zhong},
	{32, 3, "九三：不恆其德，或承之羞，貞吝。", zhong},
	{32, 4, "九四：田无禽。", zhong},
	{32, 5, "六五：恆其德，貞，婦人吉，夫子凶。", zhong},
	{32, 6, "上六：振恆，凶。", xiong},
	// 33 遯
	{33, 1, "初六：遯尾厲，勿用有攸往。", xiong},
	{33, 2, "六二：執之用黃牛之革，莫之勝說。", ji},
	{33, 3, "九三：係遯，有疾厲，畜臣妾吉。", zhong},
	{33, 4, "九四：好遯，君子吉，小人否。", zhong},
	{33, 5, "九五：嘉遯，貞吉。", ji},
	{33, 6, "上九：肥遯，无不利。", ji},
	// 34 大壯
	{34, 1, "初九：壯于趾，征凶，有孚。", xiong},
	{34, 2, "九二：貞吉。", ji},
	{34, 3, "九三：小人用壯，君子用罔，貞厲。羝羊觸藩，羸其角。", zhong},
	{34, 4, "九四：貞吉，悔亡。藩決不羸，壯于大輿之輹。", ji},
	{34, 5, "六五：喪羊于易，无悔。", zhong},
	{34, 6, "上六：羝羊觸藩，不能退，不能遂，无攸利，艱則吉。", zhong},
	// 35 晉
	{35, 1, "初六：晉如摧如，貞吉。罔孚，裕无咎。", ji},
	{35, 2, "六二：晉如愁如，貞吉。受茲介福，于其王母。", ji},
	{35, 3, "六三：眾允，悔亡。", zhong},
	{35, 4, "九四：晉如鼫鼠，貞厲。", xiong},
	{35, 5, "六五：悔亡，失得勿恤，往吉无不利。", ji},
	{35, 6, "上九：晉其角，維用伐邑，厲吉无咎，貞吝。", zhong},
	// 36 明夷
	{36, 1, "初九：明夷于飛，垂其翼。君子于行，三日不食，有攸往，主人有言。", zhong},
	{36, 2, "六二：明夷，夷于左股，用拯馬壯，吉。", ji},
	{36, 3, "九三：明夷于南狩，得其大首，不可疾貞。", zhong},
	{36, 4, "六四：入于左腹，獲明夷之心，于出門庭。", zhong},
	{36, 5, "六五：箕子之明夷，利貞。", zhong},
	{36, 6, "上六：不明晦，初登于天，後入于地。", xiong},
	// 37 家人
	{37, 1, "初九：閑有家，悔亡。", zhong},
	{37, 2, "六二：无攸遂，在中饋，貞吉。", ji},
	{37, 3, "九三：家人嗃嗃，悔厲吉。婦子嘻嘻，終吝。", zhong},
	{37, 4, "六四：富家，大吉。", ji},
	{37, 5, "九五：王假有家，勿恤，吉。", ji},
	{37, 6, "上九：有孚威如，終吉。", ji},
	// 38 睽
	{38, 1, "初九：悔亡。喪馬勿逐，自復。見惡人，无咎。", zhong},
	{38, 2, "九二：遇主于巷，无咎。", zhong},
	{38, 3, "六三：見輿曳，其牛掣，其人天且劓。无初有終。", zhong},
	{38, 4, "九四：睽孤，遇元夫，交孚，厲无咎。", zhong},
	{38, 5, "六五：悔亡。厥宗噬膚，往何咎。", ji},
	{38, 6, "上九：睽孤，見豕負塗，載鬼一車。先張之弧，後說之弧。匪寇婚媾，往遇雨則吉。", ji},
	// 39 蹇
	{39, 1, "初六：往蹇，來譽。", zhong},
	{39, 2, "六二：王臣蹇蹇，匪躬之故。", zhong},
	{39, 3, "九三：往蹇，來反。", zhong},
	{39, 4, "六四：往蹇，來連。", zhong},
	{39, 5, "九五：大蹇，朋來。", ji},
	{39, 6, "上六：往蹇，來碩，吉。利見大人。", ji},
	// 40 解
	{40, 1, "初六：无咎。", zhong},
	{40, 2, "九二：田獲三狐，得黃矢，貞吉。", ji},
	{40, 3, "六三：負且乘，致寇至，貞吝。", xiong},
	{40, 4, "九四：解而拇，朋至斯孚。", zhong},
	{40, 5, "六五：君子維有解，吉，有孚于小人。", ji},
	{40, 6, "上六：公用射隼于高墉之上，獲之，无不利。", ji},
	// 41 損
	{41, 1, "初九：已事遄往，无咎，酌損之。", zhong},
	{41, 2, "九二：利貞，征凶，弗損益之。", zhong},
	{41, 3, "六三：三人行，則損一人；一人行，則得其友。", zhong},
	{41, 4, "六四：損其疾，使遄有喜，无咎。", zhong},
	{41, 5, "六五：或益之十朋之龜，弗克違，元吉。", ji},
	{41, 6, "上九：弗損益之，无咎，貞吉，利有攸往，得臣无家。", ji},
	// 42 益
	{42, 1, "初九：利用為大作，元吉，无咎。", ji},
	{42, 2, "六二：或益之十朋之龜，弗克違，永貞吉。王用享于帝，吉。", ji},
	{42, 3, "六三：益之用凶事，无咎。有孚中行，告公用圭。", zhong},
	{42, 4, "六四：中行告公從，利用為依遷國。", zhong},
	{42, 5, "九五：有孚惠心，勿問元吉。有孚惠我德。", ji},
	{42, 6, "上九：莫益之，或擊之，立心勿恆，凶。", xiong},
	// 43 夬
	{43, 1, "初九：壯于前趾，往不勝為咎。", zhong},
	{43, 2, "九二：惕號，莫夜有戎，勿恤。", zhong},
	{43, 3, "九三：壯于頄，有凶。君子夬夬獨行，遇雨若濡，有慍，无咎。", zhong},
	{43, 4, "九四：臀无膚，其行次且。牽羊悔亡，聞言不信。", zhong},
	{43, 5, "九五：莧陸夬夬中行，无咎。", zhong},
	{43, 6, "上六：无號，終有凶。", xiong},
	// 44 姤
	{44, 1, "初六：繫于金柅，貞吉。有攸往，見凶，羸豕孚蹢躅。", ji},
	{44, 2, "九二：包有魚，无咎，不利賓。", zhong},
	{44, 3, "九三：臀无膚，其行次且，厲，无大咎。", zhong},
	{44, 4, "九四：包无魚，起凶。", xiong},
	{44, 5, "九五：以杞包瓜，含章，有隕自天。", ji},
	{44, 6, "上九：姤其角，吝，无咎。", zhong},
	// 45 萃
	{45, 1, "初六：有孚不終，乃亂乃萃。若號，一握為笑，勿恤，往无咎。", zhong},
	{45, 2, "六二：引吉，无咎，孚乃利用禴。", ji},
	{45, 3, "六三：萃如嗟如，无攸利。往无咎，小吝。", zhong},
	{45, 4, "九四：大吉，无咎。", ji},
	{45, 5, "九五：萃有位，无咎。匪孚，元永貞，悔亡。", zhong},
	{45, 6, "上六：齎咨涕洟，无咎。", zhong},
	// 46 升
	{46, 1, "初六：允升，大吉。", ji},
	{46, 2, "九二：孚乃利用禴，无咎。", zhong},
	{46, 3, "九三：升虛邑。", zhong},
	{46, 4, "六四：王用亨于岐山，吉，无咎。", ji},
	{46, 5, "六五：貞吉，升階。", ji},
	{46, 6, "上六：冥升，利于不息之貞。", zhong},
	// 47 困
	{47, 1, "初六：臀困于株木，入于幽谷，三歲不覿。", xiong},
	{47, 2, "九二：困于酒食，朱紱方來，利用亨祀。征凶，无咎。", zhong},
	{47, 3, "六三：困于石，據于蒺藜，入于其宮，不見其妻，凶。", xiong},
	{47, 4, "九四：來徐徐，困于金車，吝，有終。", zhong},
	{47, 5, "九五：劓刖，困于赤紱，乃徐有說，利用祭祀。", zhong},
	{47, 6, "上六：困于葛藟，于臲卼，曰動悔有悔，征吉。", zhong},
	// 48 井
	{48, 1, "初六：井泥不食，舊井无禽。", zhong},
	{48, 2, "九二：井谷射鮒，甕敝漏。", zhong},
	{48, 3, "九三：井渫不食，為我心惻，可用汲。王明，並受其福。", zhong},
	{48, 4, "六四：井甃，无咎。", zhong},
	{48, 5, "九五：井冽，寒泉食。", ji},
	{48, 6, "上六：井收勿幕，有孚元吉。", ji},
	// 49 革
	{49, 1, "初九：鞏用黃牛之革。", zhong},
	{49, 2, "六二：巳日乃革之，征吉，无咎。", ji},
	{49, 3, "九三：征凶，貞厲。革言三就，有孚。", xiong},
	{49, 4, "九四：悔亡，有孚改命，吉。", ji},
	{49, 5, "九五：大人虎變，未占有孚。", ji},
	{49, 6, "上六：君子豹變，小人革面。征凶，居貞吉。", ji},
	// 50 鼎
	{50, 1, "初六：鼎顛趾，利出否。得妾以其子，无咎。", zhong},
	{50, 2, "九二：鼎有實，我仇有疾，不我能即，吉。", zhong},
	{50, 3, "九三：鼎耳革，其行塞，雉膏不食。方雨虧悔，終吉。", zhong},
	{50, 4, "九四：鼎折足，覆公餗，其形渥，凶。", xiong},
	{50, 5, "六五：鼎黃耳金鉉，利貞。", ji},
	{50, 6, "上九：鼎玉鉉，大吉，无不利。", ji},
	// 51 震
	{51, 1, "初九：震來虩虩，後笑言啞啞，吉。", ji},
	{51, 2, "六二：震來厲，億喪貝，躋于九陵，勿逐，七日得。", zhong},
	{51, 3, "六三：震蘇蘇，震行无眚。", zhong},
	{51, 4, "九四：震遂泥。", zhong},
	{51, 5, "六五：震往來厲，億无喪，有事。", zhong},
	{51, 6, "上六：震索索，視矍矍，征凶。震不于其躬，于其鄰，无咎。婚媾有言。", xiong},
	// 52 艮
	{52, 1, "初六：艮其趾，无咎，利永貞。", zhong},
	{52, 2, "六二：艮其腓，不拯其隨，其心不快。", zhong},
	{52, 3, "九三：艮其限，列其夤，厲薰心。", xiong},
	{52, 4, "六四：艮其身，无咎。", zhong},
	{52, 5, "六五：艮其輔，言有序，悔亡。", zhong},
	{52, 6, "上九：敦艮，吉。", ji},
	// 53 漸
	{53, 1, "初六：鴻漸于干，小子厲，有言，无咎。", zhong},
	{53, 2, "六二：鴻漸于磐，飲食衎衎，吉。", ji},
	{53, 3, "九三：鴻漸于陸，夫征不復，婦孕不育，凶。利禦寇。", xiong},
	{53, 4, "六四：鴻漸于木，或得其桷，无咎。", zhong},
	{53, 5, "九五：鴻漸于陵，婦三歲不孕，終莫之勝，吉。", ji},
	{53, 6, "上九：鴻漸于陸，其羽可用為儀，吉。", ji},
	// 54 歸妹
	{54, 1, "初九：歸妹以娣，跛能履，征吉。", ji},
	{54, 2, "九二：眇能視，利幽人之貞。", zhong},
	{54, 3, "六三：歸妹以須，反歸以娣。", zhong},
	{54, 4, "九四：歸妹愆期，遲歸有時。", zhong},
	{54, 5, "六五：帝乙歸妹，其君之袂不如其娣之袂良。月幾望，吉。", ji},
	{54, 6, "上六：女承筐无實，士刲羊无血，无攸利。", xiong},
	// 55 豐
	{55, 1, "初九：遇其配主，雖旬无咎，往有尚。", zhong},
	{55, 2, "六二：豐其蔀，日中見斗，往得疑疾。有孚發若，吉。", zhong},
	{55, 3, "九三：豐其沛，日中見沬，折其右肱，无咎。", zhong},
	{55, 4, "九四：豐其蔀，日中見斗，遇其夷主，吉。", ji},
	{55, 5, "六五：來章，有慶譽，吉。", ji},
	{55, 6, "上六：豐其屋，蔀其家，闚其戶，闃其无人，三歲不覿，凶。", xiong},
	// 56 旅
	{56, 1, "初六：旅瑣瑣，斯其所取災。", xiong},
	{56, 2, "六二：旅即次，懷其資，得童僕貞。", zhong},
	{56, 3, "九三：旅焚其次，喪其童僕，貞厲。", xiong},
	{56, 4, "九四：旅于處，得其資斧，我心不快。", zhong},
	{56, 5, "六五：射雉一矢亡，終以譽命。", ji},
	{56, 6, "上九：鳥焚其巢，旅人先笑後號咷。喪牛于易，凶。", xiong},
	// 57 巽
	{57, 1, "初六：進退，利武人之貞。", zhong},
	{57, 2, "九二：巽在床下，用史巫紛若，吉无咎。", ji},
	{57, 3, "九三：頻巽，吝。", xiong},
	{57, 4, "六四：悔亡，田獲三品。", ji},
	{57, 5, "九五：貞吉，悔亡，无不利。无初有終。先庚三日，後庚三日，吉。", ji},
	{57, 6, "上九：巽在床下，喪其資斧，貞凶。", xiong},
	// 58 兌
	{58, 1, "初九：和兌，吉。", ji},
	{58, 2, "九二：孚兌，吉，悔亡。", ji},
	{58, 3, "六三：來兌，凶。", xiong},
	{58, 4, "九四：商兌未寧，介疾有喜。", zhong},
	{58, 5, "九五：孚于剝，有厲。", zhong},
	{58, 6, "上六：引兌。", zhong},
	// 59 渙
	{59, 1, "初六：用拯馬壯，吉。", ji},
	{59, 2, "九二：渙奔其机，悔亡。", zhong},
	{59, 3, "六三：渙其躬，无悔。", zhong},
	{59, 4, "六四：渙其群，元吉。渙有丘，匪夷所思。", ji},
	{59, 5, "九五：渙汗其大號，渙王居，无咎。", zhong},
	{59, 6, "上九：渙其血，去逖出，无咎。", zhong},
	// 60 節
	{60, 1, "初九：不出戶庭，无咎。", zhong},
	{60, 2, "九二：不出門庭，凶。", xiong},
	{60, 3, "六三：不節若，則嗟若，无咎。", zhong},
	{60, 4, "六四：安節，亨。", ji},
	{60, 5, "九五：甘節，吉，往有尚。", ji},
	{60, 6, "上六：苦節，貞凶，悔亡。", xiong},
	// 61 中孚
	{61, 1, "初九：虞吉，有它不燕。", ji},
	{61, 2, "九二：鳴鶴在陰，其子和之。我有好爵，吾與爾靡之。", ji},
	{61, 3, "六三：得敵，或鼓或罷，或泣或歌。", zhong},
	{61, 4, "六四：月幾望，馬匹亡，无咎。", zhong},
	{61, 5, "九五：有孚攣如，无咎。", zhong},
	{61, 6, "上九：翰音登于天，貞凶。", xiong},
	// 62 小過
	{62, 1, "初六：飛鳥以凶。", xiong},
	{62, 2, "六二：過其祖，遇其妣，不及其君，遇其臣，无咎。", zhong},
	{62, 3, "九三：弗過防之，從或戕之，凶。", xiong},
	{62, 4, "九四：无咎，弗過遇之，往厲必戒，勿用永貞。", zhong},
	{62, 5, "六五：密雲不雨，自我西郊，公弋取彼在穴。", zhong},
	{62, 6, "上六：弗遇過之，飛鳥離之，凶，是謂災眚。", xiong},
	// 63 既濟
	{63, 1, "初九：曳其輪，濡其尾，无咎。", ji},
	{63, 2, "六二：婦喪其茀，勿逐，七日得。", zhong},
	{63, 3, "九三：高宗伐鬼方，三年克之，小人勿用。", zhong},
	{63, 4, "六四：繻有衣袽，終日戒。", zhong},
	{63, 5, "九五：東鄰殺牛，不如西鄰之禴祭，實受其福。", zhong},
	{63, 6, "上六：濡其首，厲。", xiong},
	// 64 未濟
	{64, 1, "初六：濡其尾，吝。", zhong},
	{64, 2, "九二：曳其輪，貞吉。", ji},
	{64, 3, "六三：未濟，征凶，利涉大川。", xiong},
	{64, 4, "九四：貞吉，悔亡。震用伐鬼方，三年有賞于大國。", ji},
	{64, 5, "六五：貞吉，无悔。君子之光，有孚，吉。", ji},
	{64, 6, "上九：有孚于飲酒，无咎。濡其首，有孚失是。", zhong},
}

// #endregion corpus
